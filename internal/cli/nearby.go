package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/SISDRUG/bankoffice/internal/gateway"
	"github.com/SISDRUG/bankoffice/internal/geo"
)

// fallbackLocations is served when the locations endpoint is not deployed.
var fallbackLocations = []geo.Location{
	{ID: "atm1", Type: geo.TypeATM, Name: "ATM BPS-Sberbank", Latitude: 53.67905, Longitude: 23.82983, Address: "Savieckaja st. 1", WorkingHours: "24/7"},
	{ID: "branch1", Type: geo.TypeBranch, Name: "Belarusbank branch", Latitude: 53.68094, Longitude: 23.8292, Address: "Savieckaja st. 8", WorkingHours: "9:00-18:00"},
	{ID: "atm2", Type: geo.TypeATM, Name: "ATM Belinvestbank", Latitude: 53.6623, Longitude: 23.8412, Address: "Boldina st. 15", WorkingHours: "24/7"},
	{ID: "exchange1", Type: geo.TypeExchange, Name: "Currency exchange", Latitude: 53.6811, Longitude: 23.8345, Address: "Lenina st. 3", WorkingHours: "10:00-19:00"},
}

func (a *App) Nearby(ctx context.Context) {
	lat := a.config.MapLatitude
	lon := a.config.MapLongitude
	radius := a.config.SearchRadiusMeters

	locations, err := a.gw.NearbyLocations(ctx, lat, lon, radius)
	if err != nil {
		if !gateway.IsNotFound(err) {
			log.Printf("error: %v", err)
			return
		}
		// Endpoint not deployed yet; fall back to the built-in fixture.
		locations = fallbackLocations
	}

	results := geo.Nearby(locations, lat, lon, radius)
	if len(results) == 0 {
		printlnFn("Nothing within the search radius")
		return
	}
	for _, r := range results {
		fmt.Printf("  %-8s %-28s %6.0f m  %s (%s)\n",
			r.Type, r.Name, r.DistanceMeters, r.Address, r.WorkingHours)
	}
}
