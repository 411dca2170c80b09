package tests

// Mock generation for the service and gateway ports.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name TaskGateway --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_gateway_mock.go --with-expecter
