/*
Package parser turns usage documents into pattern trees, and argument vectors into occurrences those trees can match.

There are two token streams in play.
Usage patterns are split by [TokenizeUsage] and parsed by [ParsePattern] with this grammar:

	pattern ::= expr ;
	expr    ::= seq ( '|' seq )* ;
	seq     ::= ( atom [ '...' ] )* ;
	atom    ::= '(' expr ')' | '[' expr ']' | 'options' | long | shorts | argument | command ;

Argument vectors are resolved by [ParseArgv] against the options known to the document.
Long options may be abbreviated to any unique prefix on the command line, short options may be clustered, and "--" ends option parsing.

Malformed documents produce a [GrammarError], and argument vectors that can't be resolved produce a [MatchError].
The two never overlap: a [GrammarError] means the document must be fixed, while a [MatchError] means the user's input was wrong.
*/
package parser
