package utils

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

type logLine struct {
	Time   string         `json:"time"`
	Level  string         `json:"level"`
	Msg    string         `json:"msg"`
	Fields map[string]any `json:"fields,omitempty"`
}

func InitLogger() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
}

func write(level, msg string, fields map[string]any) {
	line, err := json.Marshal(logLine{
		Time:   time.Now().UTC().Format(time.RFC3339),
		Level:  level,
		Msg:    msg,
		Fields: fields,
	})
	if err != nil {
		log.Printf(`{"level":"ERROR","msg":"log marshal failed: %s"}`, err)
		return
	}
	log.Println(string(line))
}

func Info(msg string, fields map[string]any) {
	write("INFO", msg, fields)
}

func Warn(msg string, fields map[string]any) {
	write("WARN", msg, fields)
}

func Error(msg string, fields map[string]any) {
	write("ERROR", msg, fields)
}

func Fatal(msg string, fields map[string]any) {
	write("FATAL", msg, fields)
	os.Exit(1)
}
