package irprotocol

import (
	"strconv"
	"strings"
)

var yx1ffModeLabels = map[Mode]string{
	ModeAuto: "Auto",
	ModeCool: "Cool",
	ModeDry:  "Dry",
	ModeFan:  "Fan",
	ModeHeat: "Heat",
}

var yx1ffFanLabels = map[FanSpeed]string{
	FanAuto: "Auto",
	FanLow:  "Low",
	FanMid:  "Mid",
	FanHigh: "High",
}

// DescribeYX1FF renders cmd as human readable lines, e.g.
//
//	Settings:
//	Power: ON
//	Temperature: 24 degC
//	Mode: Cool
//	Fan: Mid
//	Sleep: OFF
func DescribeYX1FF(cmd Command) string {
	var sb strings.Builder

	sb.WriteString("Settings:\n")
	sb.WriteString("Power: " + onOff(cmd.Power) + "\n")
	sb.WriteString("Temperature: " + strconv.Itoa(cmd.Temperature) + " " + cmd.Unit.label() + "\n")

	mode, ok := yx1ffModeLabels[cmd.Mode]
	if !ok {
		mode = cmd.Mode.String()
	}
	sb.WriteString("Mode: " + mode + "\n")

	fan, ok := yx1ffFanLabels[cmd.Fan]
	if !ok {
		fan = cmd.Fan.String()
	}
	sb.WriteString("Fan: " + fan + "\n")

	sb.WriteString("Sleep: " + onOff(cmd.Sleep) + "\n")

	return sb.String()
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
