package model

// Holds all external facing record types and constants.
//
// All fields are kept as the raw strings found in the source tables.
// Dates in particular are interpreted lazily, at query time, so a record
// with an unparseable date still loads and displays.

const (
	StatusActive    = "ACTIVE"
	StatusActiveOld = "ACTIVE_OLD"
	StatusInactive  = "INACTIVE"
)

// Alert is one service disruption record. Identifiers are opaque
// strings and compared exactly, never coerced.
type Alert struct {
	AlertID        string `csv:"alert_id" json:"alert_id"`
	Status         string `csv:"status" json:"status"`
	ActiveStart    string `csv:"active_start" json:"active_start"`
	ActiveEnd      string `csv:"active_end" json:"active_end"`
	CreatedAt      string `csv:"created_at" json:"created_at"`
	UpdatedAt      string `csv:"updated_at" json:"updated_at"`
	HeaderCat      string `csv:"header_cat" json:"header_cat"`
	DescriptionCat string `csv:"description_cat" json:"description_cat"`
	HeaderEs       string `csv:"header_es" json:"header_es"`
	DescriptionEs  string `csv:"description_es" json:"description_es"`
	HeaderEn       string `csv:"header_en" json:"header_en"`
	DescriptionEn  string `csv:"description_en" json:"description_en"`
	URLCat         string `csv:"url_cat" json:"url_cat"`
	URLEs          string `csv:"url_es" json:"url_es"`
	URLEn          string `csv:"url_en" json:"url_en"`
	Effect         string `csv:"effect" json:"effect"`
}

// AlertRoute associates an alert with one affected route. A single
// alert may appear on many rows.
type AlertRoute struct {
	AlertID string `csv:"alert_id" json:"alert_id"`
	RouteID string `csv:"route_id" json:"route_id"`
}

// AlertStop associates an alert with one affected stop.
type AlertStop struct {
	AlertID string `csv:"alert_id" json:"alert_id"`
	StopID  string `csv:"stop_id" json:"stop_id"`
}

// StopOperatorDay is one row of the stop-by-day operator table: the
// operators serving a stop on a calendar day. Operators is a
// comma-separated list and Count is the count column as published,
// which may disagree with the list length.
type StopOperatorDay struct {
	StopID    string `csv:"stop_id" json:"stop_id"`
	Day       string `csv:"dia" json:"dia"`
	Operators string `csv:"lst" json:"lst"`
	Count     string `csv:"num" json:"num"`
}
