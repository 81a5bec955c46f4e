package localization

// defaultPhrases is the built-in Arabic-to-English phrase dictionary. It
// covers the recurring vocabulary of service proposals (sections, common
// service names, support terms) so that legacy Arabic-only documents render
// something sensible in English without a network round-trip.
var defaultPhrases = map[string]string{
	"التسويق":            "Marketing",
	"التسويق الرقمي":     "Digital Marketing",
	"تصميم":              "Design",
	"تصميم الشعار":       "Logo Design",
	"تصميم الهوية":       "Brand Identity Design",
	"تطوير المواقع":      "Web Development",
	"تطوير التطبيقات":    "App Development",
	"إدارة حسابات التواصل الاجتماعي": "Social Media Management",
	"الإعلانات الممولة":  "Paid Advertising",
	"تحسين محركات البحث": "Search Engine Optimization",
	"كتابة المحتوى":      "Content Writing",
	"التصوير":            "Photography",
	"المونتاج":           "Video Editing",
	"الدعم الفني":        "Technical Support",
	"الاستضافة":          "Hosting",
	"الصيانة":            "Maintenance",
	"التدريب":            "Training",
	"الاستشارات":         "Consulting",
	"الخدمات":            "Services",
	"الأسعار":            "Pricing",
	"التواصل":            "Contact",
	"ملاحظات":            "Notes",
	"شهريا":              "Monthly",
	"سنويا":              "Yearly",
}
