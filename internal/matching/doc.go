// Package matching implements proximity matching of seekers to donors, blood
// banks and oxygen suppliers: attribute filtering, distance ranking and the
// fetch → filter → rank pipeline. Everything here is stateless and safe for
// concurrent use; I/O happens only inside the injected FetchFunc.
package matching
