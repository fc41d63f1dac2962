// README: Wire events and their schema-checked payloads.
package dispatch

import (
	"encoding/json"

	"mishwar/internal/types"
)

// Inbound event names.
const (
	EventDriverLocation = "driver_location"
	EventRequestRide    = "request_ride"
	EventAcceptRide     = "accept_ride"
	EventChatMessage    = "chat_message"
	EventSOSSignal      = "sos_signal"
)

// Outbound event names.
const (
	EventUpdateMap       = "update_map"
	EventInitialRequests = "initial_requests"
	EventNewRideRequest  = "new_ride_request"
	EventRideAccepted    = "ride_accepted"
	EventChatReceived    = "chat_message_received"
	EventSOSAlert        = "sos_alert"
	EventRequestExpired  = "request_expired"
	EventError           = "error"
)

// Payload structs mirror the wire shape one to one. Coordinates are
// pointers so a missing field is distinguishable from latitude 0.

type driverLocationPayload struct {
	ID     types.ID `json:"id"`
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
	Status string   `json:"status"`
	Type   string   `json:"type"`
}

func (p *driverLocationPayload) validate() *ValidationError {
	switch {
	case p.ID == "":
		return missingField(EventDriverLocation, "id")
	case p.Lat == nil:
		return missingField(EventDriverLocation, "lat")
	case p.Lng == nil:
		return missingField(EventDriverLocation, "lng")
	case p.Status == "":
		return missingField(EventDriverLocation, "status")
	case p.Type == "":
		return missingField(EventDriverLocation, "type")
	}
	return nil
}

type requestRidePayload struct {
	PassengerID types.ID `json:"passenger_id"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

func (p *requestRidePayload) validate() *ValidationError {
	switch {
	case p.PassengerID == "":
		return missingField(EventRequestRide, "passenger_id")
	case p.Name == "":
		return missingField(EventRequestRide, "name")
	case p.Phone == "":
		return missingField(EventRequestRide, "phone")
	case p.Lat == nil:
		return missingField(EventRequestRide, "lat")
	case p.Lng == nil:
		return missingField(EventRequestRide, "lng")
	}
	return nil
}

type acceptRidePayload struct {
	DriverID    types.ID `json:"driver_id"`
	PassengerID types.ID `json:"passenger_id"`
	DriverName  string   `json:"driver_name"`
	DriverPhone string   `json:"driver_phone"`
}

func (p *acceptRidePayload) validate() *ValidationError {
	switch {
	case p.DriverID == "":
		return missingField(EventAcceptRide, "driver_id")
	case p.PassengerID == "":
		return missingField(EventAcceptRide, "passenger_id")
	}
	return nil
}

type chatMessagePayload struct {
	SenderID   types.ID `json:"sender_id"`
	ReceiverID types.ID `json:"receiver_id"`
	Message    string   `json:"message"`
}

func (p *chatMessagePayload) validate() *ValidationError {
	switch {
	case p.SenderID == "":
		return missingField(EventChatMessage, "sender_id")
	case p.ReceiverID == "":
		return missingField(EventChatMessage, "receiver_id")
	case p.Message == "":
		return missingField(EventChatMessage, "message")
	}
	return nil
}

type sosSignalPayload struct {
	ID   types.ID `json:"id"`
	Type string   `json:"type"`
}

func (p *sosSignalPayload) validate() *ValidationError {
	switch {
	case p.ID == "":
		return missingField(EventSOSSignal, "id")
	case p.Type == "":
		return missingField(EventSOSSignal, "type")
	}
	return nil
}

type expiredPayload struct {
	PassengerID types.ID `json:"passenger_id"`
}

// decode unmarshals raw into p and runs its field checks.
func decode[P interface{ validate() *ValidationError }](event string, raw json.RawMessage, p P) *ValidationError {
	if len(raw) == 0 {
		return &ValidationError{Code: CodeInvalidPayload, Message: event + ": empty payload"}
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return &ValidationError{Code: CodeInvalidPayload, Message: event + ": " + err.Error()}
	}
	return p.validate()
}
