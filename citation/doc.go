// Package citation recognises shorthand Belgian legal citations such as
// "KB 15/01/2020" or "loi 5-3-1999" in free text and turns them into a query
// against the id.belgium.be ELI lookup service.
//
// Recognised words are wet and loi (LAW), decr (DECREE) and kb, ar, mb, am
// (DECISION). The day and month may be written with one or two digits and
// separated by "/", "-" or nothing; the year must fall in 1800-2099.
//
//	if u, ok := citation.BuildURL("zie KB 15/01/2020 betreffende iets"); ok {
//	    // https://id.belgium.be/_query/eli/filter-by-docdate?date=2020-01-15&type=DECISION
//	}
//
// Every failure (text too short, no match, date before 1800) is reported as
// ok == false. Impossible dates such as 31/04 roll over into the following
// month unless the Resolver is built WithStrictCalendar.
package citation
