package notification

import (
	"fmt"
	"strings"
)

const PasswordSetupSubject = "OptiTrack: Set Up Your Password"

func PasswordSetupLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/set-password?token=" + token
}

func PasswordSetupBody(email, link string) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"You have been added to the OptiTrack system. Please click the link below to set up your password:\n\n"+
		"%s\n\n"+
		"This link will expire in 24 hours.\n\n"+
		"If you did not request this, please ignore this email.\n\n"+
		"Thanks,\nOptiTrack Team", email, link)
}

func OvertimeDecisionSubject(status string) string {
	return "OptiTrack: Overtime request " + strings.ToLower(status)
}

func OvertimeDecisionBody(name, date, hours, status string) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"Your overtime request for %s (%s hours) has been %s.\n\n"+
		"Thanks,\nOptiTrack Team", name, date, hours, strings.ToLower(status))
}
