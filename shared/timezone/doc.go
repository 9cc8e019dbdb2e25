// Package timezone pins every wall-clock reading to the application timezone (APP_TIMEZONE).
//
// Business dates are calendar days in that zone. Availability windows, invoice issue dates and
// document numbering periods are all derived from them:
//
//	timezone.Configure(cfg.App.Timezone)
//	day, err := timezone.ParseBusinessDate("2024-01-01")
//	open := timezone.Today().Equal(day)
//
// Until Configure succeeds the package works in UTC.
package timezone
