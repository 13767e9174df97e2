package providers

import (
	"github.com/samber/do/v2"

	"github.com/framelightapp/framelight-server/internal/cdn"
	"github.com/framelightapp/framelight-server/internal/config"
	"github.com/framelightapp/framelight-server/internal/logger"
	"github.com/framelightapp/framelight-server/internal/mail"
)

// ProvideCDNClient provides the image CDN client.
func ProvideCDNClient(i do.Injector) (*cdn.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client, err := cdn.New(cdn.Config{
		BaseURL: cfg.CDN.BaseURL,
		APIKey:  cfg.CDN.APIKey,
	}, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("CDN client configured", "base_url", cfg.CDN.BaseURL)

	return client, nil
}

// ProvideMailer provides the SMTP mailer for contact submissions.
func ProvideMailer(i do.Injector) (*mail.Mailer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return mail.New(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	}, log.Logger)
}
