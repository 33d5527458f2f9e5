package authgate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Server exposes a Dispatcher over HTTP. Every path is served by the
// same handler: routing happens on the `action` field, not the URL.
type Server struct {
	app        *fiber.App
	dispatcher *Dispatcher
	logger     Logger
}

type ServerOption func(*Server)

// WithServerLogger overrides the default stdout logger.
func WithServerLogger(logger Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer wires a dispatcher into a fiber app.
func NewServer(dispatcher *Dispatcher, opts ...ServerOption) *Server {
	if dispatcher == nil {
		panic("Missing Dispatcher in server...")
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		dispatcher: dispatcher,
		logger:     defLogger{},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.app.All("/*", s.handle)

	return s
}

func (s *Server) handle(c *fiber.Ctx) error {
	headers := map[string]string{}
	c.Request().Header.VisitAll(func(key, value []byte) {
		headers[string(key)] = string(value)
	})

	req := Request{
		Method:  c.Method(),
		Headers: headers,
		Body:    string(c.Body()),
	}

	rid := uuid.New().String()
	resp := s.dispatcher.Dispatch(c.UserContext(), req)
	s.logger.Info("rid=%s %s %s -> %d", rid, req.Method, c.Path(), resp.StatusCode)

	for key, value := range resp.Headers {
		c.Set(key, value)
	}
	return c.Status(resp.StatusCode).SendString(resp.Body)
}

// App exposes the fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving requests on addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
