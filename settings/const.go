package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	DT_CTRL              = 0.01 // s, controls loop period
	DT_MDL               = 0.05 // s, model/planner period
	LOOP_DELAY           = time.Duration(DT_CTRL * float64(time.Second))
	MS_TO_KPH            = 3.6
	KPH_TO_MS            = 1 / 3.6
	MPH_TO_KPH           = 1.609344
	MPH_TO_MS            = MPH_TO_KPH * KPH_TO_MS
	SETTINGS_LOAD_TRIES  = 5
)

func GetSegmentSize(name string) int {
	switch name {
	case "lateralPlan":
		return 2 * 1024 * 1024
	case "controlsdIn":
		return 1024 * 1024
	default:
		return DEFAULT_SEGMENT_SIZE
	}
}
