package main

import (
	"fmt"
	"html"
	"os"

	"github.com/npillmayer/pwmeter/dom"
	"github.com/npillmayer/pwmeter/dom/style/registry"
	"github.com/npillmayer/pwmeter/meter"
)

const defaultPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body><div id="app"></div></body>
</html>`

// hostPage returns the host page configured by cfg.
func hostPage(cfg *Config) (string, error) {
	if cfg.Page == "" {
		return fmt.Sprintf(defaultPage, html.EscapeString(cfg.Title)), nil
	}
	data, err := os.ReadFile(cfg.Page)
	if err != nil {
		return "", fmt.Errorf("cannot read host page: %w", err)
	}
	return string(data), nil
}

// session is a running password meter application.
type session struct {
	driver *dom.Driver
	styles *registry.Registry
	stop   func()
}

func startSession(cfg *Config) (*session, error) {
	page, err := hostPage(cfg)
	if err != nil {
		return nil, err
	}
	d, err := dom.NewDriver(page, cfg.Mount)
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	stop := meter.App{Styles: reg}.Run(d)
	return &session{driver: d, styles: reg, stop: stop}, nil
}

// Type sets the password and re-renders.
func (s *session) Type(password string) error {
	return s.driver.Input("input", password)
}
