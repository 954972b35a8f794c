package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/controlsd/cereal/custom"
	m "pfeifer.dev/controlsd/math"
	"pfeifer.dev/controlsd/params"
	"pfeifer.dev/controlsd/utils"
)

// MAX_STEER_ACTUATOR_DELAY bounds the configurable steering actuator delay.
const MAX_STEER_ACTUATOR_DELAY = 1.0 // s

var (
	Settings = ControlsdSettings{}
)

type ControlsdSettings struct {
	LogLevel           string    `json:"log_level"`
	IsMetric           bool      `json:"is_metric"`
	SteerActuatorDelay float32   `json:"steer_actuator_delay"`
	SteerMaxBP         []float64 `json:"steer_max_bp"`
	SteerMaxV          []float64 `json:"steer_max_v"`
	TraceEnabled       bool      `json:"trace_enabled"`
	TraceDirectory     string    `json:"trace_directory"`
}

func (s *ControlsdSettings) Default() {
	s.LogLevel = "error"
	s.IsMetric = true
	s.SteerActuatorDelay = 0.1
	s.SteerMaxBP = []float64{0}
	s.SteerMaxV = []float64{1}
	s.TraceEnabled = false
	s.TraceDirectory = "/data/media/0/controlsd"
}

func (s *ControlsdSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	defer s.loadIsMetric()

	data, err := params.GetParam(params.CONTROLSD_SETTINGS)
	if err != nil {
		utils.Loge(err, "could not read settings param")
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(errors.Wrap(err, "could not parse settings"), "could not load settings")
		return false
	}

	s.SetSteerActuatorDelay(s.SteerActuatorDelay)
	s.setLogLevel()

	return true
}

// SetSteerActuatorDelay stores the delay clipped to
// [0, MAX_STEER_ACTUATOR_DELAY]. NaN is stored as 0.
func (s *ControlsdSettings) SetSteerActuatorDelay(delay float32) {
	clipped := float32(m.Clip(float64(delay), 0, MAX_STEER_ACTUATOR_DELAY))
	if clipped != delay {
		slog.Warn("steer actuator delay out of range, clipping", "delay", delay, "clipped", clipped)
	}
	s.SteerActuatorDelay = clipped
}

// loadIsMetric follows the openpilot unit toggle when it is set.
func (s *ControlsdSettings) loadIsMetric() {
	metric, err := params.GetBool(params.IS_METRIC)
	if err != nil {
		utils.Logde(err, "IsMetric param unavailable, keeping setting", "is_metric", s.IsMetric)
		return
	}
	s.IsMetric = metric
}

func (s *ControlsdSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *ControlsdSettings) Save() {
	data, err := s.Marshal()
	if err != nil {
		utils.Loge(err, "could not marshal settings")
		return
	}
	err = params.PutParam(params.CONTROLSD_SETTINGS, data)
	if err != nil {
		utils.Loge(err, "could not save settings")
		return
	}
}

func (s ControlsdSettings) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal settings")
	}
	return data, nil
}

func (s *ControlsdSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

// Handle applies a settings command. Commands that are not about settings
// are ignored.
func (s *ControlsdSettings) Handle(input custom.ControlsdIn) {
	switch input.Type() {
	case custom.ControlsdInputType_reloadSettings:
		s.Load()
	case custom.ControlsdInputType_saveSettings:
		snapshot := *s
		go snapshot.Save()
	case custom.ControlsdInputType_loadDefaultSettings:
		s.Default()
	case custom.ControlsdInputType_setSteerActuatorDelay:
		s.SetSteerActuatorDelay(input.Float())
	case custom.ControlsdInputType_setIsMetric:
		s.IsMetric = input.Bool()
	case custom.ControlsdInputType_setTraceEnabled:
		s.TraceEnabled = input.Bool()
	case custom.ControlsdInputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err, "could not read log level")
			return
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	}
}
