package models

// Connection represents a workbook datasource and the connection behind it.
type Connection struct {
	// ID is the datasource name fields refer to.
	ID string `json:"id"`
	// Name is the server, file or database name of the connection.
	Name string `json:"name,omitempty"`
	// Alias is the datasource caption.
	Alias string `json:"alias,omitempty"`
	// Class is the connection class (e.g., excel-direct, sqlserver).
	Class string `json:"class,omitempty"`
}
