package interaction

import "fmt"

// Command is a discrete key command.
type Command uint8

const (
	CommandNone Command = iota
	CommandReset
	CommandToggleGravity
	CommandTogglePause
	CommandToggleRenderMode
	CommandSpeed1
	CommandSpeed2
	CommandSpeed3
	CommandSpeed4
	CommandToggleHUD
)

var commandNames = [...]string{
	CommandNone:             "none",
	CommandReset:            "reset",
	CommandToggleGravity:    "gravity",
	CommandTogglePause:      "pause",
	CommandToggleRenderMode: "render_mode",
	CommandSpeed1:           "speed_1",
	CommandSpeed2:           "speed_2",
	CommandSpeed3:           "speed_3",
	CommandSpeed4:           "speed_4",
	CommandToggleHUD:        "hud",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", c)
}

// ParseCommand maps a command name (as used in config and scripts) to its
// Command.
func ParseCommand(s string) (Command, error) {
	for i, name := range commandNames {
		if name == s && Command(i) != CommandNone {
			return Command(i), nil
		}
	}
	return CommandNone, fmt.Errorf("unknown command %q", s)
}

// Commands lists every bindable command in display order.
func Commands() []Command {
	return []Command{
		CommandReset,
		CommandToggleGravity,
		CommandTogglePause,
		CommandToggleRenderMode,
		CommandSpeed1,
		CommandSpeed2,
		CommandSpeed3,
		CommandSpeed4,
		CommandToggleHUD,
	}
}

// SpeedPreset returns the preset index (0-3) selected by a speed command.
func (c Command) SpeedPreset() (int, bool) {
	if c >= CommandSpeed1 && c <= CommandSpeed4 {
		return int(c - CommandSpeed1), true
	}
	return 0, false
}
