package history

import (
	"fmt"
	"time"
)

// Switch is one recorded profile transition.
type Switch struct {
	ID         int64
	Tool       string
	Previous   string
	Current    string
	PowerDown  bool
	SwitchedAt time.Time
}

// Record appends a switch to the log.
func (d *DB) Record(tool, previous, current string, powerDown bool) error {
	_, err := d.Exec(`
        INSERT INTO switches (tool, previous, current, powerdown)
        VALUES (?, ?, ?, ?)
    `, tool, previous, current, powerDown)
	if err != nil {
		return fmt.Errorf("recording switch: %w", err)
	}
	return nil
}

// Recent returns the most recent switches, newest first.
func (d *DB) Recent(limit int) ([]Switch, error) {
	rows, err := d.Query(`
        SELECT id, tool, previous, current, powerdown, switched_at
        FROM switches
        ORDER BY id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("listing switches: %w", err)
	}
	defer rows.Close()

	var switches []Switch
	for rows.Next() {
		var s Switch
		if err := rows.Scan(&s.ID, &s.Tool, &s.Previous, &s.Current, &s.PowerDown, &s.SwitchedAt); err != nil {
			return nil, fmt.Errorf("scanning switch: %w", err)
		}
		switches = append(switches, s)
	}

	return switches, rows.Err()
}
