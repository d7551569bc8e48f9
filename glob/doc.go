// Package glob implements Ant-style include/exclude pattern matching and
// recursive file copying for artifact archiving.
//
// Patterns use the Ant wildcard syntax: '*' matches within a path segment,
// '**' matches across segments, and '?' matches a single character. A
// pattern string may contain several patterns separated by commas or
// whitespace; a file matches the string when it matches any one of them.
package glob
