package logger

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

type stdOut struct {
	min   zapcore.Level
	print func(msg string)
}

var _ Logger = &stdOut{}

// NewStdOut prints every message, debug included, to stdout.
func NewStdOut() Logger {
	return &stdOut{
		min:   zapcore.DebugLevel,
		print: printLine,
	}
}

// NewStdOutLevel prints messages at or above level to stdout.
// Levels are the ones NewZap accepts.
func NewStdOutLevel(level string) (Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return &stdOut{min: lvl, print: printLine}, nil
}

func printLine(msg string) {
	fmt.Println(msg)
}

func (p *stdOut) Debugf(format string, args ...any) {
	p.log(zapcore.DebugLevel, format, args...)
}

func (p *stdOut) Infof(format string, args ...any) {
	p.log(zapcore.InfoLevel, format, args...)
}

func (p *stdOut) Warnf(format string, args ...any) {
	p.log(zapcore.WarnLevel, format, args...)
}

func (p *stdOut) Errorf(format string, args ...any) {
	p.log(zapcore.ErrorLevel, format, args...)
}

func (p *stdOut) log(lvl zapcore.Level, format string, args ...any) {
	if lvl < p.min {
		return
	}
	p.print(fmt.Sprintf("[mailtrain] [%s] "+format, append([]any{lvl.CapitalString()}, args...)...))
}
