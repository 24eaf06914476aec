// Package beverage prepares hot drinks along a fixed recipe skeleton.
//
// Prepare always runs the same sequence of steps: boil water, brew (or
// steep), pour into the cup, add condiments if the customer wants them, and
// finish. A Recipe supplies the two mandatory steps; the remaining steps have
// defaults which a recipe overrides by implementing the optional interfaces.
package beverage

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Recipe provides the steps that differ for every beverage.
type Recipe interface {
	BrewOrSteep() string
	AddCondiments() string
}

// CondimentChooser decides whether condiments are added.
// Recipes that don't implement it always get condiments.
type CondimentChooser interface {
	WantsCondiments() bool
}

// Finisher provides a final step after preparation.
// Recipes that don't implement it have no final step.
type Finisher interface {
	AfterPrepare() string
}

// WaterBoiler overrides the default water boiling step.
type WaterBoiler interface {
	BoilWater() string
}

// CupPourer overrides the default pouring step.
type CupPourer interface {
	PourInCup() string
}

// Default step descriptions.
const (
	DefaultBoilWater = "boiling water..."
	DefaultPourInCup = "pouring into cup..."
)

// Prepare runs the recipe and logs each step as it is performed.
// It returns the performed steps in order.
func Prepare(r Recipe, logger zerolog.Logger) []string {
	log := logger.With().Str("component", "beverage").Logger()
	steps := []string{}
	step := func(s string) {
		log.Info().Msg(s)
		steps = append(steps, s)
	}

	if b, ok := r.(WaterBoiler); ok {
		step(b.BoilWater())
	} else {
		step(DefaultBoilWater)
	}

	step(r.BrewOrSteep())

	if p, ok := r.(CupPourer); ok {
		step(p.PourInCup())
	} else {
		step(DefaultPourInCup)
	}

	wants := true
	if c, ok := r.(CondimentChooser); ok {
		wants = c.WantsCondiments()
	}
	if wants {
		step(r.AddCondiments())
	}

	if f, ok := r.(Finisher); ok {
		step(f.AfterPrepare())
	}

	return steps
}

// Prompter asks yes/no questions on a line-based terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks the question and returns whether the answer was "y" or "yes"
// (ignoring case and surrounding whitespace).
// A failure to read is taken as "no".
func (p *Prompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Tea is steeped and asks whether to add lemon and honey.
type Tea struct {
	Prompter *Prompter
}

func (t Tea) BrewOrSteep() string   { return "steeping the tea for 3 minutes..." }
func (t Tea) AddCondiments() string { return "adding lemon and honey..." }

// WantsCondiments asks via the prompter, if there is one.
func (t Tea) WantsCondiments() bool {
	if t.Prompter == nil {
		return true
	}
	return t.Prompter.Confirm("Would you like condiments with your tea?")
}

// Coffee is brewed, asks whether to add milk and sugar, and announces when it
// is ready.
type Coffee struct {
	Prompter *Prompter
}

func (c Coffee) BrewOrSteep() string   { return "brewing the coffee in the machine..." }
func (c Coffee) AddCondiments() string { return "adding milk and sugar..." }
func (c Coffee) AfterPrepare() string  { return "coffee is ready, enjoy!" }

// WantsCondiments asks via the prompter, if there is one.
func (c Coffee) WantsCondiments() bool {
	if c.Prompter == nil {
		return true
	}
	return c.Prompter.Confirm("Would you like condiments with your coffee?")
}
