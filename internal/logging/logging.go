// Package logging builds the zap logger used by the GUI server.
package logging

import "go.uber.org/zap"

// New returns a logger for the given environment name. Anything other than
// "production" gets the human-readable development configuration.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
