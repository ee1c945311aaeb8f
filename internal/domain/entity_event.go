package domain

import "time"

type EventAction string

const (
	ActionCreated       EventAction = "created"
	ActionUpdated       EventAction = "updated"
	ActionDeleted       EventAction = "deleted"
	ActionProductsAdded EventAction = "products_added"
)

type EntityEvent struct {
	Entity     string      `json:"entity"`
	Action     EventAction `json:"action"`
	ID         uint64      `json:"id"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// RoutingKey is the topic the event is published under, e.g. "order.created".
func (e EntityEvent) RoutingKey() string {
	return e.Entity + "." + string(e.Action)
}

func NewEntityEvent(entity string, action EventAction, id uint64) EntityEvent {
	return EntityEvent{Entity: entity, Action: action, ID: id, OccurredAt: time.Now().UTC()}
}
