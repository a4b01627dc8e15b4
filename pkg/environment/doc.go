// Package environment names the deployment environment a process runs in
// and carries it through context.Context.
//
// Parse normalizes configured names ("prod", "staging", "dev", ...) into one
// of the Development, Staging or Production constants. The logger package uses
// it to pick output defaults. A validation engine built with an environment
// stores it in the context handed to failure handlers.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
//
//	// inside a failure handler
//	if env, ok := environment.FromContext(ctx); ok && env == environment.Production {
//	    // production-specific behaviour
//	}
//
// # Error Handling
//
// Helpers never return errors. Unknown names parse as Development; a context
// without an environment reports ok == false.
package environment
