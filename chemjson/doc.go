package chemjson

//Package chemjson implements the JSON exchange of structures and hydrogen
//bonds with programs which can be written in languages other than Go.
//A structure is a stream of residue objects, one per line, optionally
//preceded by a line with the options for the job. Results are sent back
//as a stream of bond objects followed by one Info object, for instance,
//via UNIX pipes.
