// Package setup implements the admin-setup console flow: it applies the
// schema migrations, runs the admin bootstrap initializers and sets the
// password of the built-in admin user, prompting for it in the terminal
// when none is given on the command line.
package setup
