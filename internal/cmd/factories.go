package cmd

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/renato0307/pitmaster/internal/adapters/pitmaster"
	"github.com/renato0307/pitmaster/internal/adapters/sound"
	adapterstorage "github.com/renato0307/pitmaster/internal/adapters/storage"
	"github.com/renato0307/pitmaster/internal/config"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/metrics"
	"github.com/renato0307/pitmaster/internal/poller"
	"github.com/renato0307/pitmaster/internal/ports"
	"github.com/renato0307/pitmaster/internal/services"
	"github.com/renato0307/pitmaster/internal/session"
)

// Container holds all dependencies for the application
type Container struct {
	// Core
	API        *pitmaster.Client
	Controller *session.Controller
	Metrics    *metrics.Metrics
	Supervisor *poller.Supervisor

	// Services
	CookService    *services.CookService
	JournalService *services.JournalService
	PresetService  *services.PresetService

	// Internal - for cleanup only
	alarms   *services.AlarmRecorder
	journal  ports.CookJournal
	recorder *services.JournalRecorder
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	journal, err := adapterstorage.NewSQLiteJournal(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	api := pitmaster.New(settings.GetAPIURL())
	recorder := services.NewJournalRecorder(journal, services.DefaultJournalBuffer)

	opts := []session.ControllerOption{
		session.WithRecorder(m),
		session.WithRecorder(recorder),
	}
	var alarms *services.AlarmRecorder
	if settings.AlarmsEnabled() {
		alarms = services.NewAlarmRecorder(sound.NewPlayer())
		opts = append(opts, session.WithRecorder(alarms))
	}
	controller := session.NewController(opts...)

	loop := poller.New(api, poller.NewControllerSink(controller),
		poller.WithInterval(settings.GetPollInterval()),
		poller.WithMetrics(m),
	)

	cookService := services.NewCookService(api, controller, journal, m,
		services.WithDetailedMode(settings.IsDetailedMode()))
	cookService.ApplyDefaultMode()

	logging.Logger.Debug("Container created", "db_path", config.GetDBPath())

	return &Container{
		API:            api,
		Controller:     controller,
		CookService:    cookService,
		JournalService: services.NewJournalService(journal, api),
		Metrics:        m,
		PresetService:  services.NewPresetService(api),
		Supervisor:     poller.NewSupervisor(loop, controller),
		alarms:         alarms,
		journal:        journal,
		recorder:       recorder,
	}, nil
}

// Close flushes pending journal writes and alarms and closes the journal
func (c *Container) Close() error {
	var errs []error
	if c.alarms != nil {
		errs = append(errs, c.alarms.Close())
	}
	if c.recorder != nil {
		errs = append(errs, c.recorder.Close())
	}
	if c.journal != nil {
		errs = append(errs, c.journal.Close())
	}
	return errors.Join(errs...)
}
