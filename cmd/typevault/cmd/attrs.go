package cmd

import "log/slog"

func slogType(name string) slog.Attr { return slog.String("type", name) }

func slogValue(v string) slog.Attr { return slog.String("value", v) }

func slogError(err error) slog.Attr { return slog.Any("error", err) }
