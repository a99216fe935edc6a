package main

import (
	"context"
	"os"

	"nestmap/internal/apiclient"
	"nestmap/internal/form"
	"nestmap/internal/logging"
	"nestmap/internal/page"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	client := apiclient.New(cfg.APIBaseURL, cfg.Timeout, log)

	p := page.New(page.Config{
		View:      newConsoleView(os.Stdout),
		Transport: client,
		Widget:    &consoleWidget{out: os.Stdout},
		Source:    client,
		Activator: &consoleActivator{out: os.Stdout},
		Alerts:    &consoleAlerts{out: os.Stdout},
		Logger:    log,
	})

	ctx := context.Background()
	if err := p.Open(ctx); err != nil {
		log.Fatal().Err(err).Msg("open page")
	}

	if cfg.SubmitDemo {
		if err := runDemoSubmission(ctx, p); err != nil {
			log.Fatal().Err(err).Msg("demo submission")
		}
	}
}

// runDemoSubmission fills the form the way a user would and submits it.
func runDemoSubmission(ctx context.Context, p *page.Page) error {
	steps := []struct {
		field   form.Field
		trigger form.Trigger
		value   string
	}{
		{form.FieldTitle, form.TriggerInput, "Cozy flat two minutes from the metro line"},
		{form.FieldType, form.TriggerChange, "flat"},
		{form.FieldPrice, form.TriggerInput, "4500"},
		{form.FieldRooms, form.TriggerChange, "2"},
		{form.FieldCapacity, form.TriggerChange, "2"},
		{form.FieldCheckIn, form.TriggerChange, "13:00"},
	}
	for _, s := range steps {
		if err := p.HandleField(s.field, s.trigger, s.value); err != nil {
			return err
		}
	}
	return p.Submit(ctx)
}
