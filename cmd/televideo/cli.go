package main

import "time"

// CLI defines the command-line flags for Kong.
type CLI struct {
	Page    int           `default:"100" help:"Page to open at startup (100-899)."`
	SubPage int           `default:"1" help:"Sub-page to open at startup."`
	Text    bool          `help:"Start in text mode instead of image mode."`
	Timeout time.Duration `default:"10s" help:"HTTP request timeout."`
	RPS     float64       `name:"rps" default:"4" help:"Politeness limit in requests per second (0 disables)."`
	Log     string        `type:"path" placeholder:"FILE" help:"Append debug logs to FILE."`
}
