// README: Event broker: routes inbound events to state mutations and role-aware fan-out.
package dispatch

import (
	"encoding/json"
	"log"
	"sync"

	"mishwar/internal/modules/presence"
	"mishwar/internal/modules/ride"
	"mishwar/internal/types"
	"mishwar/internal/ws"
)

// Registry is what the broker needs from the connection registry.
// *ws.Hub satisfies it.
type Registry interface {
	Register(s ws.Session)
	Unregister(s ws.Session)
	Broadcast(event string, data any)
	BroadcastRoles(event string, data any, roles ...types.Role)
	SendToUser(userID string, event string, data any) bool
}

// Service serializes every event's mutate-and-fan-out under one mutex, so
// a joining session's snapshot can never miss or duplicate a concurrent
// event, and accept_ride's check-then-delete is one atomic step.
type Service struct {
	mu       sync.Mutex
	drivers  *presence.Store
	rides    *ride.Service
	registry Registry
}

func NewService(drivers *presence.Store, rides *ride.Service, registry Registry) *Service {
	return &Service{drivers: drivers, rides: rides, registry: registry}
}

// OnConnect registers the session and hands it the current state, so late
// joiners observe a consistent starting point without replaying history.
func (s *Service) OnConnect(c ws.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Register(c)
	c.Send(EventUpdateMap, s.drivers.Snapshot())
	if c.Role() == types.RoleDriver || c.Role() == types.RoleAdmin {
		c.Send(EventInitialRequests, s.rides.Snapshot())
	}
}

// OnDisconnect unregisters the session. A driver's record leaves the map
// with it, and everyone still watching gets the shrunk snapshot.
func (s *Service) OnDisconnect(c ws.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Unregister(c)
	if c.Role() == types.RoleDriver && s.drivers.Remove(types.ID(c.UserID())) {
		s.registry.Broadcast(EventUpdateMap, s.drivers.Snapshot())
	}
}

// OnRequestExpired announces that the expiry sweep dropped a request.
func (s *Service) OnRequestExpired(r ride.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.BroadcastRoles(EventRequestExpired, expiredPayload{PassengerID: r.ID},
		types.RoleDriver, types.RoleAdmin)
}

// HandleMessage dispatches one inbound event. A validation failure is
// answered with an `error` event to the sender only and returned for
// logging; it never touches broker state or the connection.
func (s *Service) HandleMessage(c ws.Session, event string, raw json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var verr *ValidationError
	switch event {
	case EventDriverLocation:
		verr = s.handleDriverLocation(raw)
	case EventRequestRide:
		verr = s.handleRequestRide(raw)
	case EventAcceptRide:
		verr = s.handleAcceptRide(raw)
	case EventChatMessage:
		verr = s.handleChatMessage(raw)
	case EventSOSSignal:
		verr = s.handleSOSSignal(c, raw)
	default:
		verr = &ValidationError{Code: CodeUnknownEvent, Message: "unknown event " + event}
	}

	if verr != nil {
		c.Send(EventError, verr)
		return verr
	}
	return nil
}

func (s *Service) handleDriverLocation(raw json.RawMessage) *ValidationError {
	var p driverLocationPayload
	if verr := decode(EventDriverLocation, raw, &p); verr != nil {
		return verr
	}

	s.drivers.Upsert(presence.Driver{
		ID:          p.ID,
		Point:       types.Point{Lat: *p.Lat, Lng: *p.Lng},
		Status:      presence.Status(p.Status),
		VehicleType: presence.VehicleType(p.Type),
	})
	// Every page renders the map, so the fresh snapshot goes to all roles.
	s.registry.Broadcast(EventUpdateMap, s.drivers.Snapshot())
	return nil
}

func (s *Service) handleRequestRide(raw json.RawMessage) *ValidationError {
	var p requestRidePayload
	if verr := decode(EventRequestRide, raw, &p); verr != nil {
		return verr
	}

	req := s.rides.Submit(ride.SubmitCommand{
		PassengerID: p.PassengerID,
		Name:        p.Name,
		Phone:       p.Phone,
		Position:    types.Point{Lat: *p.Lat, Lng: *p.Lng},
	})
	log.Printf("dispatch: new ride request from %s", req.Name)
	s.registry.BroadcastRoles(EventNewRideRequest, req, types.RoleDriver, types.RoleAdmin)
	return nil
}

func (s *Service) handleAcceptRide(raw json.RawMessage) *ValidationError {
	var p acceptRidePayload
	if verr := decode(EventAcceptRide, raw, &p); verr != nil {
		return verr
	}

	acc, won := s.rides.Accept(ride.AcceptCommand{
		DriverID:    p.DriverID,
		PassengerID: p.PassengerID,
		DriverName:  p.DriverName,
		DriverPhone: p.DriverPhone,
	})
	// The store's remove is the sole arbiter: no removal, no notification.
	if !won {
		return nil
	}
	log.Printf("dispatch: ride %s accepted by %s", acc.PassengerID, acc.DriverID)
	s.registry.BroadcastRoles(EventRideAccepted, acc, types.RoleDriver, types.RoleAdmin)
	s.registry.SendToUser(string(acc.PassengerID), EventRideAccepted, acc)
	return nil
}

func (s *Service) handleChatMessage(raw json.RawMessage) *ValidationError {
	var p chatMessagePayload
	if verr := decode(EventChatMessage, raw, &p); verr != nil {
		return verr
	}

	// Chat is 1:1: the receiver gets the message, the sender gets its echo.
	s.registry.SendToUser(string(p.ReceiverID), EventChatReceived, p)
	if p.SenderID != p.ReceiverID {
		s.registry.SendToUser(string(p.SenderID), EventChatReceived, p)
	}
	return nil
}

func (s *Service) handleSOSSignal(c ws.Session, raw json.RawMessage) *ValidationError {
	var p sosSignalPayload
	if verr := decode(EventSOSSignal, raw, &p); verr != nil {
		return verr
	}

	log.Printf("dispatch: SOS from %s (%s) via conn=%s", p.ID, p.Type, c.ConnID())
	s.registry.BroadcastRoles(EventSOSAlert, p, types.RoleAdmin)
	return nil
}
