package timeutil

import (
	"time"
)

// BST is the Bangladesh Standard Time location (UTC+6)
var BST *time.Location

func init() {
	var err error
	BST, err = time.LoadLocation("Asia/Dhaka")
	if err != nil {
		// Fallback: create fixed zone if Asia/Dhaka not available
		BST = time.FixedZone("BST", 6*60*60) // UTC+6
	}
}

// Now returns the current time in BST
func Now() time.Time {
	return time.Now().In(BST)
}

// ToBST converts any time to BST
func ToBST(t time.Time) time.Time {
	return t.In(BST)
}

// StartOfDay returns the start of day (00:00:00) in BST for the given time
func StartOfDay(t time.Time) time.Time {
	bst := t.In(BST)
	return time.Date(bst.Year(), bst.Month(), bst.Day(), 0, 0, 0, 0, BST)
}

// EndOfDay returns the end of day (23:59:59) in BST for the given time
func EndOfDay(t time.Time) time.Time {
	bst := t.In(BST)
	return time.Date(bst.Year(), bst.Month(), bst.Day(), 23, 59, 59, 999999999, BST)
}

// DisplayLayout is the human-facing timestamp format used on invoices.
const DisplayLayout = "02 Jan 2006, 03:04 PM"
