package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aircnc/aircnc-server/internal/middleware"
	"github.com/aircnc/aircnc-server/internal/token"
)

// Router owns every HTTP handler and mounts them on a Fiber app.
type Router struct {
	Tokens   *token.Service
	Auth     *AuthHandler
	Users    *UserHandler
	Rooms    *RoomHandler
	Bookings *BookingHandler
	Payments *PaymentHandler
}

// Register mounts all routes. Routes that require a bearer token go through
// the auth middleware; everything else dispatches straight to the handler.
func (r *Router) Register(app *fiber.App) {
	requireAuth := middleware.RequireAuth(r.Tokens)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AirCNC server is running..")
	})

	app.Post("/jwt", r.Auth.IssueToken)

	app.Get("/users/:email", r.Users.GetUser)
	app.Put("/users/:email", r.Users.UpsertUser)

	app.Get("/rooms", r.Rooms.ListRooms)
	app.Get("/rooms/:email", requireAuth, r.Rooms.ListHostRooms)
	app.Get("/room/:id", r.Rooms.GetRoom)
	app.Post("/rooms", requireAuth, r.Rooms.CreateRoom)
	app.Patch("/rooms/status/:id", r.Rooms.UpdateStatus)
	app.Put("/rooms/:id", requireAuth, r.Rooms.UpdateRoom)
	app.Delete("/rooms/:id", r.Rooms.DeleteRoom)

	app.Post("/create-payment-intent", requireAuth, r.Payments.CreateIntent)

	app.Get("/bookings", r.Bookings.ListGuestBookings)
	app.Get("/bookings/host", r.Bookings.ListHostBookings)
	app.Post("/bookings", r.Bookings.CreateBooking)
	app.Delete("/bookings/:id", r.Bookings.DeleteBooking)
}
