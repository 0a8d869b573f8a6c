// Package httpapi adapts the jsonapi library to net/http: it extracts
// parsed queries and document bodies from requests, writes documents with
// the JSON:API media type, and maps library errors to HTTP status codes.
//
// The adapter is framework-agnostic. Handlers built on any router that
// speaks net/http can use it directly:
//
//	func getArticle(w http.ResponseWriter, r *http.Request) {
//	    q, err := httpapi.ParseQuery(r)
//	    if err != nil {
//	        httpapi.Error(w, err)
//	        return
//	    }
//	    d, err := render.Object(lookup(r), q)
//	    if err != nil {
//	        httpapi.Error(w, err)
//	        return
//	    }
//	    httpapi.Write(w, d)
//	}
//
// Malformed client input (bad query strings, bad bodies) maps to 400;
// everything else maps to 500. Error documents carry generated ids so a
// payload seen by a client can be correlated with a server-side log line.
package httpapi
