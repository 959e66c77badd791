// Command imdbooo crawls IMDb title and person pages into a local SQLite
// cache and prints what it finds.
//
//	imdbooo index --url https://m.imdb.com/chart/top
//	imdbooo index --file saved.html --without-roles
//	imdbooo search --query "the matrix"
//	imdbooo show tt0133093
//	imdbooo stats --genres
//
// Output lines follow --format-title and --format-person. Title placeholders
// are {id} {title} {year} {rating} {plot} {poster} {runtime} {genres}; person
// placeholders are {id} {firstname} {middlename} {lastname} {birthdate}.
// --json switches every command to JSON output.
package main
