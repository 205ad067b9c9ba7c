package usecase

import (
	"context"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/logging"
)

const (
	overridableHeading = "Accept this certificate?"
	fatalHeading       = "This connection cannot be trusted"
)

// TrustGate resolves certificate errors through a modal prompt. It blocks the
// calling engine callback by running nested main-loop iterations until the
// prompt answers.
type TrustGate struct {
	prompter port.TrustPrompter
	loop     port.MainLoop
}

// NewTrustGate creates a gate that prompts through prompter and waits on loop.
func NewTrustGate(prompter port.TrustPrompter, loop port.MainLoop) *TrustGate {
	return &TrustGate{prompter: prompter, loop: loop}
}

// OnCertificateError is installed as the RenderView certificate hook.
func (g *TrustGate) OnCertificateError(ctx context.Context, certErr entity.CertificateError) entity.TrustDecision {
	log := logging.FromContext(ctx).With().
		Str("url", certErr.URL).
		Str("host", certErr.Host).
		Bool("overridable", certErr.Overridable).
		Logger()

	if !certErr.Overridable {
		log.Warn().Str("reason", certErr.Description).Msg("certificate error is not overridable")
		g.ask(ctx, port.TrustPrompt{
			Kind:    port.TrustPromptInform,
			Heading: fatalHeading,
			URL:     certErr.URL,
			Detail:  certErr.Description,
		})
		return entity.TrustDeny
	}

	accepted := g.ask(ctx, port.TrustPrompt{
		Kind:    port.TrustPromptConfirm,
		Heading: overridableHeading,
		URL:     certErr.URL,
		Detail:  certErr.Description,
	})
	decision := entity.TrustDeny
	if accepted {
		decision = entity.TrustAllow
	}
	log.Info().Stringer("decision", decision).Msg("certificate trust decided")
	return decision
}

// ask presents prompt and spins the main loop until the answer arrives in a
// single-slot rendezvous. A cancelled context answers false.
func (g *TrustGate) ask(ctx context.Context, prompt port.TrustPrompt) bool {
	slot := make(chan bool, 1)
	g.prompter.Present(ctx, prompt, func(accepted bool) {
		select {
		case slot <- accepted:
		default:
		}
	})

	var answer bool
	var answered bool
	receive := func() bool {
		if answered {
			return true
		}
		select {
		case answer = <-slot:
			answered = true
		default:
		}
		return answered
	}

	if !receive() {
		g.loop.RunUntil(ctx, receive)
	}
	if !receive() {
		return false
	}
	return answer
}
