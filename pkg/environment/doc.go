// Package environment names the deployment environment a tool runs in.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	log := logger.New(logger.WithEnvironment(env.String(), "formcheck"))
package environment
