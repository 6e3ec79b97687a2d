package collector

import (
	"context"
	"path/filepath"
	"time"

	cfgpkg "github.com/SamWeichangyue/page-spy/internal/config"
	"github.com/SamWeichangyue/page-spy/internal/export"
	"github.com/SamWeichangyue/page-spy/internal/harbor"
	"github.com/SamWeichangyue/page-spy/internal/plugin"
	pebblestore "github.com/SamWeichangyue/page-spy/internal/storage/pebble"
	"github.com/SamWeichangyue/page-spy/pkg/id"
	logpkg "github.com/SamWeichangyue/page-spy/pkg/log"
)

// userAgent identifies the Go collector to the remote endpoint.
const userAgent = "page-spy-go/1.0"

// diskSession is the fixed key prefix of the staging harbor. One staging
// directory holds one harbor, so tools can reopen it without knowing a
// per-run identifier.
const diskSession = "current"

// Options for building a Collector.
type Options struct {
	Config cfgpkg.Config
	Logger logpkg.Logger
	// Bus, when set, is subscribed immediately via the plugin wrapper.
	Bus plugin.Bus
}

// Collector owns one harbor and its collaborators.
type Collector struct {
	cfg      cfgpkg.Config
	logger   logpkg.Logger
	db       *pebblestore.DB
	harbor   *harbor.Harbor
	plugin   *plugin.Plugin
	uploader *export.Uploader
	sid      string
	deviceID string
}

// Open initializes storage and wires the harbor. An empty DataDir keeps the
// harbor in memory.
func Open(opts Options) (*Collector, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		lvl, _ := logpkg.ParseLevel(cfg.LogLevel)
		format, _ := logpkg.ParseFormat(cfg.LogFormat)
		logger = logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormat(format))
	}

	var db *pebblestore.DB
	var st harbor.Store
	if cfg.DataDir != "" {
		var err error
		db, err = pebblestore.Open(pebblestore.Options{
			DataDir: filepath.Join(cfg.DataDir, "store"),
			Fsync:   pebblestore.FsyncModeInterval,
		})
		if err != nil {
			return nil, err
		}
		st, err = harbor.OpenDiskStore(db, diskSession)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	h := harbor.New(harbor.Options{
		Maximum: cfg.MaximumBytes,
		Period:  cfg.Period(),
		Store:   st,
		Logger:  logger,
	})

	p, err := plugin.New(h, plugin.Options{Filter: cfg.Filter, Logger: logger})
	if err != nil {
		h.Close()
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	if opts.Bus != nil {
		p.Init(opts.Bus)
	}

	c := &Collector{
		cfg:      cfg,
		logger:   logger.With(logpkg.Component("collector")),
		db:       db,
		harbor:   h,
		plugin:   p,
		uploader: export.NewUploader(cfg.APIBase, nil, logger),
		sid:      id.NewGenerator().Next().String(),
		deviceID: export.NewDeviceID(),
	}
	c.logger.Info("collector opened",
		logpkg.Str("sid", c.sid),
		logpkg.Bool("disk", db != nil),
		logpkg.Int64("maximum", h.Maximum()),
		logpkg.Dur("period", cfg.Period()))
	return c, nil
}

// Harbor exposes the staging buffer.
func (c *Collector) Harbor() *harbor.Harbor { return c.harbor }

// Plugin exposes the bus wrapper.
func (c *Collector) Plugin() *plugin.Plugin { return c.plugin }

// Snapshot assembles all stored entries into the export wire form.
func (c *Collector) Snapshot() ([]byte, error) {
	all, err := c.harbor.GetAll()
	if err != nil {
		return nil, err
	}
	return export.Marshal(all)
}

// Dump writes the current snapshot into dir and returns the file path.
func (c *Collector) Dump(dir string) (string, error) {
	payload, err := c.Snapshot()
	if err != nil {
		return "", err
	}
	name := export.Filename(c.cfg.Project, c.cfg.Title, time.Now(), c.sid)
	path, err := export.SaveSnapshot(dir, name, payload)
	if err != nil {
		return "", err
	}
	c.logger.Info("snapshot saved", logpkg.Str("path", path), logpkg.Int("bytes", len(payload)))
	return path, nil
}

// Upload posts the current snapshot to the configured remote collector.
func (c *Collector) Upload(ctx context.Context) error {
	payload, err := c.Snapshot()
	if err != nil {
		return err
	}
	return c.uploader.Upload(ctx, payload, export.Meta{
		Project:   c.cfg.Project,
		Title:     c.cfg.Title,
		DeviceID:  c.deviceID,
		UserAgent: userAgent,
	})
}

// Close stops the plugin, the harbor, and the underlying store.
func (c *Collector) Close() error {
	c.plugin.Stop()
	c.harbor.Close()
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
