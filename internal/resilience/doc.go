// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes circuit breakers to ensure system resilience in the face of failures of
// external dependencies.
//
// The package supports:
//   - Circuit breakers for external API calls (news provider)
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.NewsAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
package resilience
