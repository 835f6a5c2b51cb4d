// Package templates generates the canonical declaration text for each page
// archetype. Generation is a pure mapping from (archetype, capability
// toggles, declaration kind) to text: the declarations live as an embedded
// pongo2 bundle and the toggles only feed the signature and argument
// fragments into the render context.
package templates
