// Package environment names the environment a command runs in and carries it
// through context.Context so log records can be tagged with it.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//	environment.IsDevelopment(ctx)
package environment
