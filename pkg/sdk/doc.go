// Package redrelief embeds the RedRelief aggregation engine in a Go program,
// reading the same Redis or Valkey collections the HTTP API serves.
//
//	client, _ := redrelief.New(ctx, redrelief.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	banks, _ := client.Search().Banks(ctx, redrelief.Query{BloodType: "O+", Urgency: "high"})
//	for _, b := range banks {
//	    fmt.Println(b.Name, b.TotalAvailable)
//	}
//
//	listing, _ := client.Campaigns().ApprovedInCity(ctx, "Pune", "")
//	if listing.Note != "" {
//	    // served by a full scan because the campaign index is missing
//	}
package redrelief
