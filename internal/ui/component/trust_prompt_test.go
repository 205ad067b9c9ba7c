package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shower/internal/application/port"
)

func TestTrustChoices(t *testing.T) {
	confirm := trustChoices(port.TrustPromptConfirm)
	assert.Equal(t, []trustChoice{{"No", false}, {"Yes", true}}, confirm)

	inform := trustChoices(port.TrustPromptInform)
	assert.Equal(t, []trustChoice{{"OK", false}}, inform)
}
