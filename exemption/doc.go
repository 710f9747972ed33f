// Package exemption reads exemption-code catalogs and formats the codes
// applied to individual redactions.
//
// A catalog is an XML file naming one category of exemptions:
//
//	<ExemptionCodes Category="FOIA">
//	  <Description>Freedom of Information Act</Description>
//	  <Code Name="(b)(1)" Summary="National security">Longer text</Code>
//	  <Code Name="(b)(6)" Summary="Personal privacy"/>
//	</ExemptionCodes>
//
// Use [Load] or [Parse] to read one, then [Catalog.Lookup] to resolve code
// names. Lookups are case-insensitive.
package exemption
