package notify

import (
	"context"
	"fmt"

	"github.com/cedbrasil/enrolld/config"
	"github.com/cedbrasil/enrolld/internal/core/domain"

	"github.com/rs/zerolog"
)

// Notifier implements ports.Notifier over WhatsApp and Discord. Delivery is
// best effort: failures are logged here and never fail the caller.
type Notifier struct {
	whatsapp *WhatsAppClient
	discord  *DiscordClient
	log      zerolog.Logger
}

// NewNotifier wires both channels from config.
func NewNotifier(cfg config.NotifyConfig, log zerolog.Logger) *Notifier {
	return &Notifier{
		whatsapp: NewWhatsAppClient(cfg.WhatsAppURL, cfg.WhatsAppToken, cfg.Timeout, log),
		discord:  NewDiscordClient(cfg.DiscordWebhookURL, cfg.Timeout, log),
		log:      log.With().Str("component", "notifier").Logger(),
	}
}

// SendWelcome messages the student their portal credentials.
func (n *Notifier) SendWelcome(ctx context.Context, contactNumber string, name string, code domain.RegistrationCode, password string) error {
	message := fmt.Sprintf(
		"Olá %s! 👋\n\n"+
			"Bem-vindo(a) ao CED! Sua matrícula foi realizada com sucesso.\n\n"+
			"Seus dados de acesso são:\n"+
			"Login: `%s`\n"+
			"Senha: `%s`\n\n"+
			"Acesse nossa plataforma e comece seus estudos agora mesmo!\n"+
			"Em caso de dúvidas, estamos à disposição.",
		name, code, password,
	)
	if err := n.whatsapp.SendText(ctx, contactNumber, message); err != nil {
		n.log.Error().Err(err).Str("contact", contactNumber).Msg("welcome message failed")
		return nil
	}
	return nil
}

// LogEvent posts an operational event to the team channel.
func (n *Notifier) LogEvent(ctx context.Context, title string, description string, success bool) error {
	if err := n.discord.Post(ctx, title, description, success); err != nil {
		n.log.Error().Err(err).Str("title", title).Msg("discord event failed")
		return nil
	}
	return nil
}
