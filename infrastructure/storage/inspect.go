package storage

import (
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// InspectRow renders one record for the Badger debug inspector.
// Index keys carry no value and fall back to the default rendering.
func InspectRow(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	prefix, _, _ := strings.Cut(key, ":")
	row.Type = strings.ToUpper(prefix)

	var detail string
	var err error
	switch prefix {
	case "greeting":
		var dg diskGreeting
		if err = unmarshal(val, &dg); err == nil {
			detail = fmt.Sprintf("%s -> %s:%s [%s] %q", dg.SenderID, dg.RecipientType, dg.RecipientID, dg.Status, dg.Message)
		}
	case "notif":
		var dn diskNotification
		if err = unmarshal(val, &dn); err == nil {
			detail = fmt.Sprintf("%s read=%t %q", dn.UserID, dn.ReadAt != nil, dn.Message)
		}
	case "msg":
		var dm diskChatMessage
		if err = unmarshal(val, &dm); err == nil {
			detail = fmt.Sprintf("%s [%s] %q", dm.SenderID, dm.Lang, dm.Content)
		}
	case "group":
		var dg diskGroup
		if err = unmarshal(val, &dg); err == nil {
			detail = fmt.Sprintf("%s owned by %s", dg.Name, dg.OwnerID)
		}
	case "member":
		var dm diskMember
		if err = unmarshal(val, &dm); err == nil {
			detail = fmt.Sprintf("%s in %s as %s", dm.UserID, dm.GroupID, dm.Role)
		}
	case "user":
		var du diskUser
		if err = unmarshal(val, &du); err == nil {
			detail = fmt.Sprintf("%s roles=%v", du.Email, du.Roles)
		}
	default:
		return row
	}

	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Detail = detail
	return row
}
