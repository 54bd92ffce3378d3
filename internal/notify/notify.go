// Package notify posts desktop notifications over the session bus. Delivery
// is best effort; a failure never affects the recording outcome.
package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	objectName = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	callName   = objectName + ".Notify"

	appName = "chronapse"
)

func Send(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	obj := conn.Object(objectName, dbus.ObjectPath(objectPath))
	call := obj.Call(callName, 0,
		appName,
		uint32(0), // no notification to replace
		"",        // no icon
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(-1), // server-default expiry
	)
	return call.Err
}
