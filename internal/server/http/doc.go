// Package httpserver provides a minimal REST surface for the identifier
// service: JSON generation endpoints and an inspection endpoint that accepts
// any representation.
//
// Example:
//
//	svc, _ := idsvc.Open(config.Default())
//	defer svc.Close()
//	s := httpserver.New(svc)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
package httpserver
