package parse

import (
	"github.com/danielprats/atmalerts/model"
)

// Decoders for the four source tables. These pull fields out of the
// generic rows by header name; missing columns simply come through as
// empty strings. No validation happens here: date and count columns are
// interpreted by their consumers, which degrade gracefully on bad
// values.

func Alerts(data []byte) []model.Alert {
	rows := Table(data)
	alerts := make([]model.Alert, 0, len(rows))
	for _, r := range rows {
		alerts = append(alerts, model.Alert{
			AlertID:        r["alert_id"],
			Status:         r["status"],
			ActiveStart:    r["active_start"],
			ActiveEnd:      r["active_end"],
			CreatedAt:      r["created_at"],
			UpdatedAt:      r["updated_at"],
			HeaderCat:      r["header_cat"],
			DescriptionCat: r["description_cat"],
			HeaderEs:       r["header_es"],
			DescriptionEs:  r["description_es"],
			HeaderEn:       r["header_en"],
			DescriptionEn:  r["description_en"],
			URLCat:         r["url_cat"],
			URLEs:          r["url_es"],
			URLEn:          r["url_en"],
			Effect:         r["effect"],
		})
	}
	return alerts
}

func AlertRoutes(data []byte) []model.AlertRoute {
	rows := Table(data)
	routes := make([]model.AlertRoute, 0, len(rows))
	for _, r := range rows {
		routes = append(routes, model.AlertRoute{
			AlertID: r["alert_id"],
			RouteID: r["route_id"],
		})
	}
	return routes
}

func AlertStops(data []byte) []model.AlertStop {
	rows := Table(data)
	stops := make([]model.AlertStop, 0, len(rows))
	for _, r := range rows {
		stops = append(stops, model.AlertStop{
			AlertID: r["alert_id"],
			StopID:  r["stop_id"],
		})
	}
	return stops
}

func StopOperatorDays(data []byte) []model.StopOperatorDay {
	rows := Table(data)
	days := make([]model.StopOperatorDay, 0, len(rows))
	for _, r := range rows {
		days = append(days, model.StopOperatorDay{
			StopID:    r["stop_id"],
			Day:       r["dia"],
			Operators: r["lst"],
			Count:     r["num"],
		})
	}
	return days
}
