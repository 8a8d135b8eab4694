package ui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// For a list of possible icons, see: https://specifications.freedesktop.org/icon-naming-spec/icon-naming-spec-latest.html
const (
	AppName = "fps2go"

	IconDialogError = "dialog-error"
	IconDialogInfo  = "dialog-information"

	UrgencyLow      = "low"
	UrgencyCritical = "critical"
)

func NotifyInfo(title, text string) {
	NotifySend(UrgencyLow, title, text, IconDialogInfo)
}

func NotifyError(title, text string) {
	NotifySend(UrgencyCritical, title, text, IconDialogError)
}

// NotifySend shows a desktop notification on the display session of the user logged in on $DISPLAY.
// Failures are only logged, a missing notification never interrupts the caller.
func NotifySend(urgency, title, text, icon string) {
	display, exists := os.LookupEnv("DISPLAY")
	if !exists {
		Debug("Cannot send notification, missing env variable 'DISPLAY'")
		return
	}

	user, userId, err := findDisplaySessionUser(display)
	if err != nil {
		Warning("Cannot send notification: %v", err)
		return
	}

	cmd := exec.Command("sudo", "-u", user,
		"DISPLAY="+display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/"+userId+"/bus",
		"notify-send",
		"-a", AppName,
		"-u", urgency,
		"-i", icon,
		title, text,
	)
	if err = cmd.Run(); err != nil {
		Error("Error sending notification: %v", err)
	}
}

// findDisplaySessionUser returns the name and uid of the user owning the given display
func findDisplaySessionUser(display string) (user string, userId string, err error) {
	output, err := exec.Command("who").Output()
	if err != nil {
		return "", "", fmt.Errorf("unable to find user of display session: %w", err)
	}
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && strings.Contains(line, display) {
			user = fields[0]
			break
		}
	}
	if len(user) <= 0 {
		return "", "", errors.New("unable to detect user of current display session")
	}

	output, err = exec.Command("id", "-u", user).Output()
	userId = strings.TrimSpace(string(output))
	if err != nil || len(userId) <= 0 {
		return "", "", fmt.Errorf("unable to detect user id of %s: %v", user, err)
	}
	return user, userId, nil
}
