package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/cafe-app/models"
)

const (
	ActorStaff    = "staff"
	ActorSystem   = "system"
	ActorCustomer = "customer"
)

var ErrInvalidTransition = errors.New("invalid transition")

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor string             `json:"actor"`
}

// validTransitions is the whole lifecycle. Staff drive it from the orders board,
// the tracking simulator drives it as "system". Customers only watch.
var validTransitions = []Transition{
	{From: models.OrderStatusPending, To: models.OrderStatusPreparing, Actor: ActorStaff},
	{From: models.OrderStatusPending, To: models.OrderStatusPreparing, Actor: ActorSystem},
	{From: models.OrderStatusPreparing, To: models.OrderStatusReady, Actor: ActorStaff},
	{From: models.OrderStatusPreparing, To: models.OrderStatusReady, Actor: ActorSystem},
	{From: models.OrderStatusReady, To: models.OrderStatusServed, Actor: ActorStaff},
	{From: models.OrderStatusReady, To: models.OrderStatusServed, Actor: ActorSystem},
	{From: models.OrderStatusServed, To: models.OrderStatusCompleted, Actor: ActorStaff},
	{From: models.OrderStatusServed, To: models.OrderStatusCompleted, Actor: ActorSystem},
}

// Lifecycle lists the statuses in the order a customer sees them on the tracking screen.
var Lifecycle = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusPreparing,
	models.OrderStatusReady,
	models.OrderStatusServed,
	models.OrderStatusCompleted,
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// Next is the single forward step from status; false at the terminal state.
func Next(status models.OrderStatus) (models.OrderStatus, bool) {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "", false
	}
	return nexts[0], true
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s is not allowed for actor '%s'. Valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, actor, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// Valid reports whether status is part of the lifecycle.
func Valid(status models.OrderStatus) bool {
	for _, s := range Lifecycle {
		if s == status {
			return true
		}
	}
	return false
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
