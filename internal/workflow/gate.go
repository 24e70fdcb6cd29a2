package workflow

import "context"

// Choice is the highlighted answer of an open confirmation.
type Choice int

const (
	ChoiceYes Choice = iota
	ChoiceNo
)

// GateOutcome reports what a key did to an open gate.
type GateOutcome int

const (
	GateIgnored GateOutcome = iota
	GateToggled
	GateConfirmed
	GateDeclined
	GateCancelled
)

// Gate holds a pending mutation behind a Yes/No confirmation. While open
// it consumes every key. The choice always starts on No.
type Gate struct {
	open    bool
	message string
	action  func(ctx context.Context)
	choice  Choice
}

// Request opens the gate for action.
func (g *Gate) Request(message string, action func(ctx context.Context)) {
	g.open = true
	g.message = message
	g.action = action
	g.choice = ChoiceNo
}

func (g *Gate) IsOpen() bool    { return g.open }
func (g *Gate) Message() string { return g.message }
func (g *Gate) Choice() Choice  { return g.choice }

func (g *Gate) close() func(context.Context) {
	action := g.action
	g.open = false
	g.message = ""
	g.action = nil
	g.choice = ChoiceNo
	return action
}

// HandleKey processes one key while the gate is open. The action runs
// only on Enter with Yes highlighted.
func (g *Gate) HandleKey(ctx context.Context, k Key) GateOutcome {
	if !g.open {
		return GateIgnored
	}
	switch k.Code {
	case KeyLeft, KeyRight:
		if g.choice == ChoiceYes {
			g.choice = ChoiceNo
		} else {
			g.choice = ChoiceYes
		}
		return GateToggled
	case KeyEnter:
		confirmed := g.choice == ChoiceYes
		action := g.close()
		if !confirmed {
			return GateDeclined
		}
		if action != nil {
			action(ctx)
		}
		return GateConfirmed
	case KeyEsc:
		g.close()
		return GateCancelled
	}
	return GateIgnored
}

// Answer resolves an open gate directly, as a y/n shortcut would.
func (g *Gate) Answer(ctx context.Context, yes bool) GateOutcome {
	if !g.open {
		return GateIgnored
	}
	if !yes {
		return g.HandleKey(ctx, Press(KeyEsc))
	}
	g.choice = ChoiceYes
	return g.HandleKey(ctx, Press(KeyEnter))
}
