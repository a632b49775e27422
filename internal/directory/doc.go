// Package directory provides an HTTP client for the remote country directory.
//
// The directory is a single JSON endpoint. One GET returns every country in
// an envelope whose "data" field is a list of objects carrying a "name":
//
//	{"error":false,"msg":"...","data":[{"name":"France","capital":"Paris"}]}
//
// The client validates that contract and maps every named entry to a Country
// with a freshly generated UUID. Order follows the response; nothing is sorted
// locally.
//
// # Usage Example
//
//	client := directory.NewClient("") // default endpoint
//	countries, err := client.FetchAll(ctx)
//	if err != nil {
//	    fmt.Println(directory.UserMessage)
//	    return err
//	}
//	fmt.Print(directory.FormatCompact(countries))
//
// # Error Handling
//
// Every failure is a *FetchError. Network errors, non-2xx statuses and
// malformed bodies are not distinguished by type; the Op field records the
// failing stage for logs only.
//
// # Retries and Caching
//
// There are none. A failed fetch is retried only when the caller asks again.
package directory
