package tasks

// DefineTasks registers all available tasks
func DefineTasks() {
	RegisterHandler(LogInfoTask.TaskID(), LogInfoTask.HandleExecution)

	// Posting maintenance
	RegisterHandler(ExpireJobPostingsTask.TaskID(), ExpireJobPostingsTask.HandleExecution)
	RegisterHandler(RepostRecurringPostingsTask.TaskID(), RepostRecurringPostingsTask.HandleExecution)

	// Recruiter notifications
	RegisterHandler(SendPipelineDigestTask.TaskID(), SendPipelineDigestTask.HandleExecution)
}
