// Package params parses the KEY=VALUE inputs houston accepts on the command
// line and from env files.
//
// # Field Assignments
//
// "houston set" takes control field assignments such as
//
//	houston set debian/control Section=utils Maintainer="Jane Doe <jane@example.com>"
//
// ParseAssignments keeps them in command line order and rejects names that
// cannot be written as a control field (empty, containing whitespace or a
// colon, or starting with "#" or "-").
//
// # Env Files
//
// --env-file flags name files in .env format. They are parsed with godotenv
// and merged by LoadEnvFiles, later files overriding earlier ones. The merged
// map feeds the HOUSTON_* configuration overrides.
package params
