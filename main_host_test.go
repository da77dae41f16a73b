package main

import "testing"

func TestParseFlags_MapFollowsScreen(t *testing.T) {
	o, err := parseFlags([]string{"-width", "800", "-height", "600"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.host.Width != 800 || o.host.Height != 600 {
		t.Fatalf("screen %dx%d; want 800x600", o.host.Width, o.host.Height)
	}
	if o.app.MapWidth != 0 || o.app.MapHeight != 0 {
		t.Fatalf("map %dx%d; want 0x0 so the screen size is used", o.app.MapWidth, o.app.MapHeight)
	}
}

func TestParseFlags_Explicit(t *testing.T) {
	o, err := parseFlags([]string{"-map-width", "640", "-map-height", "480", "-decay", "0.5", "-dual", "-headless", "-ticks", "3"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.app.MapWidth != 640 || o.app.MapHeight != 480 || o.app.Decay != 0.5 || !o.app.DualColor {
		t.Fatalf("app config %+v", o.app)
	}
	if !o.headless.Enabled || o.headless.Ticks != 3 {
		t.Fatalf("headless config %+v", o.headless)
	}
	if o.host.Width != 1920 || o.host.Height != 1080 {
		t.Fatalf("default screen %dx%d", o.host.Width, o.host.Height)
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	if _, err := parseFlags([]string{"-nope"}); err == nil {
		t.Fatal("unknown flag accepted")
	}
}
