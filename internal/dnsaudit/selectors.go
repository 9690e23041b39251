package dnsaudit

// CommonSelectors are well-known DKIM selectors probed during the audit.
// Order matters only for which selector gets reported on the first match.
// selector1/selector2 (Microsoft) and google front the list because they
// cover the bulk of hosted mail.
var CommonSelectors = []string{
	"selector1",
	"selector2",
	"google",
	"default",
	"mail",
	"dkim",
	"k1",
	"k2",
	"s1",
	"s2",
	"sig1",
	"mandrill",
	"zoho",
	"amazonses",
}
