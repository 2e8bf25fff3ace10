package constants

const (
	TableBeneficiaries = "beneficiaries"
	TableCaseWorkers   = "case_workers"
	TableApplications  = "applications"
	TableForumTopics   = "forum_topics"
	TableForumPosts    = "forum_posts"
	TableConversations = "conversations"
	TableMessages      = "messages"
	TableBenefits      = "benefits"
	TableFAQs          = "faqs"
)
