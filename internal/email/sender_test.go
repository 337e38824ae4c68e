package email

import (
	"context"
	"errors"
	"testing"

	stderrors "astral-content/internal/common/errors"
	"astral-content/internal/common/logger"
	"astral-content/internal/locale"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, input)
	return &ses.SendEmailOutput{}, nil
}

func createTestMailer(t *testing.T, client SESAPI, enabled bool) *Mailer {
	renderer := createTestRenderer(t, map[string]locale.Document{
		locale.StoreKey("es-ES", "astral"): emailDocument(),
	})
	return NewMailer(client, renderer, "news@astral.example", enabled, logger.NewTestLogger(t))
}

// ==========================
// Mailer Tests
// ==========================

func TestMailer_SendWelcome(t *testing.T) {
	client := &fakeSES{}
	mailer := createTestMailer(t, client, true)

	require.NoError(t, mailer.SendWelcome(context.Background(), spanishSubscriber("pro")))
	require.Len(t, client.inputs, 1)

	input := client.inputs[0]
	assert.Equal(t, "news@astral.example", *input.Source)
	assert.Equal(t, []string{"sol@example.com"}, input.Destination.ToAddresses)
	assert.Equal(t, "Bienvenido, Sol", *input.Message.Subject.Data)
}

func TestMailer_Disabled_SkipsSend(t *testing.T) {
	client := &fakeSES{}
	mailer := createTestMailer(t, client, false)

	require.NoError(t, mailer.SendWelcome(context.Background(), spanishSubscriber("free")))
	assert.Empty(t, client.inputs)
}

func TestMailer_SendFailure(t *testing.T) {
	client := &fakeSES{err: errors.New("ses throttled")}
	mailer := createTestMailer(t, client, true)

	err := mailer.SendDaily(context.Background(), spanishSubscriber("pro"), "contenido")
	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeEmailSendFailed, stderrors.CodeOf(err))
	assert.True(t, stderrors.IsRetryable(err))
}
