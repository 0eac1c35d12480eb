package content

import "github.com/tacravensolutionsllc-dotcom/blogsmith/internal/catalog"

// Closing appends the shared call-to-action that ends every post.
func Closing() string {
	s := `
            <h2>Taking Action: Your Next Steps</h2>

            <p>Information without action is just entertainment. Here's how to make this post useful:</p>

            <p><strong>This week:</strong> Pick one specific thing from this guide and do it. Not five things—one thing. Complete it before moving to the next.</p>

            <p><strong>This month:</strong> Build one tangible artifact demonstrating your capabilities. A completed certification, a documented lab project, a CTF achievement, an open source contribution. Something you can point to.</p>

            <p><strong>This quarter:</strong> Have a conversation with someone working in the security role you're targeting. Not to ask for a job—to learn what the work is actually like and what skills matter most.</p>

            <h2>The Bottom Line</h2>

            <p>Cybersecurity offers real opportunities for people willing to put in the work. The 3.5 million unfilled jobs aren't marketing hype—they represent genuine demand from organizations that need security talent.</p>

            <p>But opportunity doesn't mean easy. You need to build real skills, not just collect credentials. You need to communicate effectively, not just know things. You need to persist through a competitive job market.</p>

            <p>The path is achievable. Thousands of people make the transition every year, from all kinds of backgrounds. With focused effort and realistic expectations, you can be one of them.</p>

            <p><strong>The shortage isn't going away. The question is whether you'll be ready to fill one of those positions.</strong></p>
`
	s += Callout("Ready to Start?", `If you're preparing for Security+ certification, <a href="https://tacraven.com/products/talonprep/">TalonPrep</a> offers 800+ practice questions designed to help you pass. It works completely offline—no internet required—which makes it useful for focused study sessions or environments with restricted connectivity.`, true)
	return s
}

// DeepDive returns the category's extended deep-dive section, or "" when the
// category has none.
func DeepDive(cat catalog.Category) string {
	return deepDives[cat]
}

// Exercises returns the category's practical exercises section.
func Exercises(cat catalog.Category) string {
	return exercises[cat]
}

// FAQ returns the category's common-questions section.
func FAQ(cat catalog.Category) string {
	return faqs[cat]
}

var deepDives = map[catalog.Category]string{
	catalog.Certifications: `
            <h2>Deep Dive: Exam Day Success</h2>

            <p>The weeks of study matter, but exam day execution determines whether all that preparation pays off. Here's what you need to know:</p>

            <h3>Before the Exam</h3>

            <p>Get good sleep the night before—cognitive performance drops significantly with sleep deprivation. Eat a normal meal; don't experiment with new foods. Arrive early to handle check-in without rushing. Bring required identification and confirmation information.</p>

            <p>If taking the exam at a testing center, know the location and parking situation. If taking it online, test your system beforehand, ensure your workspace meets requirements, and have backup plans for technical issues.</p>

            <h3>During the Exam</h3>

            <p>Read each question completely before looking at answers. Many questions have important qualifiers ("MOST likely," "FIRST action," "BEST approach") that change the correct answer.</p>

            <p>Don't spend too much time on any single question. Mark difficult questions for review and move on—you can come back with fresh perspective. Your first instinct is often correct; don't change answers without good reason.</p>

            <p>Manage your time: Security+ gives you 90 minutes for up to 90 questions. That's about one minute per question with no buffer. If a question is taking more than 2 minutes, mark it and move on.</p>

            <h3>Understanding Question Types</h3>

            <p>CompTIA uses several question formats: multiple choice (most common), drag-and-drop, and performance-based questions (PBQs). PBQs appear early but you can skip them and return later—many test-takers save these for the end when they have more time.</p>

            <p>Performance-based questions simulate real scenarios: configuring a firewall, analyzing logs, setting up access controls. These test practical application rather than memorization. Practice with labs makes these much easier.</p>

            <h3>If You Don't Pass</h3>

            <p>First, it's not the end of the world. Many successful security professionals failed certification exams before passing. You can retake the exam after a waiting period (usually 14 days for first retake).</p>

            <p>After the exam, you receive a score report showing your performance by domain. Use this to focus your study on weak areas. Don't just repeat the same study approach—if it didn't work the first time, change something.</p>
`,
	catalog.Salaries: `
            <h2>Deep Dive: Understanding Compensation Packages</h2>

            <p>Base salary gets all the attention, but total compensation can be 20-50% higher at many companies. Understanding the full picture helps you evaluate offers accurately.</p>

            <h3>Equity Compensation</h3>

            <p>Stock options give you the right to buy company stock at a set price. Restricted Stock Units (RSUs) are grants of actual stock that vest over time. Both can be significant at larger companies—a senior security engineer at a public tech company might receive $50,000-100,000 in annual equity grants.</p>

            <p>Equity is complicated: understand the vesting schedule (typically 4 years with 1-year cliff), the tax implications (RSUs are taxed as income when they vest), and the company's stock price trajectory. Startup equity is higher risk—most startups fail, making options worthless.</p>

            <h3>Bonuses</h3>

            <p>Annual bonuses typically range from 5-20% of base salary depending on level and company. Some companies guarantee bonuses; others tie them to individual and company performance. Ask about bonus history and realistic expectations.</p>

            <p>Signing bonuses are one-time payments when you join, often $5,000-30,000 for security roles. They're often easier to negotiate than base salary increases because they don't create ongoing cost for the company.</p>

            <h3>Benefits Value</h3>

            <p>Health insurance varies dramatically—some companies pay 100% of premiums for employees and families; others cover only partial amounts. The difference can be $5,000-15,000 annually in actual value.</p>

            <p>401(k) matching is effectively free money. A 50% match up to 6% of salary on a $100,000 salary is worth $3,000 per year. Some companies offer dollar-for-dollar matching or higher limits.</p>

            <p>Other benefits to consider: professional development budget (certifications, training, conferences), student loan assistance, HSA contributions, commuter benefits, wellness stipends, and home office equipment allowances.</p>

            <h3>Calculating Total Compensation</h3>

            <p>To compare offers accurately, calculate total compensation: Base salary + expected annual bonus + annual equity value (RSU grants ÷ vesting years, or expected value of options) + employer 401(k) match + insurance premium savings versus your current plan.</p>

            <p>A $120,000 base with 15% bonus, $40,000 annual RSUs, and 6% 401(k) match has total comp of approximately $127,200 (excluding equity) or $167,200 (including equity).</p>
`,
	catalog.CareerPaths: `
            <h2>Deep Dive: Making Career Transitions</h2>

            <p>Career paths aren't always linear. Here's how to navigate common transitions within security:</p>

            <h3>From SOC Analyst to Security Engineer</h3>

            <p>This transition requires building technical depth. Focus on automation—scripting, API integration, tool customization. Take on projects that involve deploying or configuring security tools rather than just using them. Build a home lab that demonstrates engineering skills.</p>

            <p>The timeline varies, but 2-3 years of SOC experience with intentional skill-building typically positions you for engineering roles.</p>

            <h3>From Technical Role to Management</h3>

            <p>Management requires different skills than technical work. Start developing them before making the transition: mentor junior team members, lead projects, volunteer for cross-functional coordination, practice presenting to stakeholders.</p>

            <p>Be honest about whether you want to manage. The best engineers don't always make the best managers, and forcing yourself into a role you don't enjoy helps no one.</p>

            <h3>From Defense to Offense</h3>

            <p>Transitioning from blue team to red team requires building offensive skills on your own time. Complete offensive-focused CTF challenges and training platforms. Consider OSCP or similar certifications. Build a portfolio demonstrating practical offensive capability.</p>

            <p>The transition often happens via internal opportunity—companies may train defensive staff for red team roles—or through consulting firms that cross-train employees.</p>

            <h3>From Operations to GRC</h3>

            <p>Technical experience is valuable in GRC, especially for understanding whether controls are actually effective. To make this transition, learn compliance frameworks (SOC 2, ISO 27001, NIST), develop strong documentation and communication skills, and seek opportunities to support audits or compliance activities in your current role.</p>

            <h3>Making Any Transition Successfully</h3>

            <p>Regardless of direction: build skills before you need them, create evidence of capability through projects and certifications, network with people in your target role to understand what's actually required, and be patient—transitions take time.</p>
`,
	catalog.JobSearch: `
            <h2>Deep Dive: Interview Success Strategies</h2>

            <p>Getting interviews is only half the battle. Converting interviews to offers requires preparation and execution:</p>

            <h3>Research the Company Thoroughly</h3>

            <p>Before any interview, understand: What does the company do? What security challenges does their industry face? Have they been in the news for security incidents? What security tools and frameworks do they likely use? What's the company culture like?</p>

            <p>This research enables you to ask informed questions and tailor your responses to their specific context.</p>

            <h3>Prepare Your Examples</h3>

            <p>Behavioral interviews assess past behavior as a predictor of future performance. Prepare 5-7 examples from your experience (including home lab and learning experiences) that demonstrate problem-solving, learning ability, collaboration, attention to detail, and handling pressure.</p>

            <p>Use the STAR method to structure your answers: Situation (set the context), Task (your responsibility), Action (what you specifically did), Result (the outcome, quantified if possible).</p>

            <h3>Technical Interview Preparation</h3>

            <p>Review fundamentals: networking concepts, OS security, common attack types, incident response basics. Practice explaining technical concepts simply—many interviewers test your ability to communicate, not just your knowledge.</p>

            <p>For hands-on assessments, practice thinking out loud. Interviewers want to see your thought process, not just whether you get the right answer. Explain what you're doing and why as you work through problems.</p>

            <h3>Questions to Ask Interviewers</h3>

            <p>Good questions demonstrate genuine interest and help you evaluate the opportunity: What does a typical day look like for this role? What are the biggest security challenges the team is currently facing? How does the security team interact with other departments? What opportunities exist for learning and growth? What do successful people in this role typically do in their first 90 days?</p>

            <h3>After the Interview</h3>

            <p>Send thank-you emails within 24 hours to everyone you interviewed with. Reference something specific from each conversation. Reiterate your interest in the role.</p>

            <p>If you're asked about timeline or other offers, be honest but don't create unnecessary pressure. If you don't hear back within the stated timeline, one follow-up is appropriate.</p>
`,
	catalog.Skills: `
            <h2>Deep Dive: Building a Home Lab</h2>

            <p>A home lab is one of the most valuable investments you can make in your security career. Here's how to build one that actually helps you learn:</p>

            <h3>Hardware Requirements</h3>

            <p>You don't need expensive equipment. A laptop with 16GB RAM and a decent processor can run several virtual machines simultaneously. 32GB is better if you want to run complex environments.</p>

            <p>External storage helps—VMs take space, and you'll want to maintain different configurations for different learning scenarios.</p>

            <h3>Essential VM Setup</h3>

            <p>At minimum, set up: Windows 10/11 VM (evaluation version is free), Linux VM (Ubuntu or Kali depending on focus), and a vulnerable VM for practicing (DVWA, Metasploitable, or VulnHub machines).</p>

            <p>Configure networking so VMs can communicate with each other but are isolated from your main network. This lets you practice attacks safely.</p>

            <h3>Security Tools to Deploy</h3>

            <p>SIEM: Wazuh or Elastic Security are free and provide real SIEM experience. Configure them to collect logs from your other VMs. Write detection rules and practice investigating alerts.</p>

            <p>Network monitoring: Wireshark for packet capture, Zeek or Suricata for network security monitoring. Practice analyzing traffic and identifying suspicious patterns.</p>

            <p>Vulnerability scanning: OpenVAS is free and provides vulnerability assessment experience. Scan your own systems and practice interpreting results.</p>

            <h3>Learning Scenarios to Practice</h3>

            <p>Set up scenarios that mirror real work: Generate benign and malicious activity, then investigate using your SIEM. Practice the full incident response workflow: detection, triage, investigation, documentation. Attempt attacks against your vulnerable machines and verify your detection tools catch them.</p>

            <h3>Documenting Your Lab</h3>

            <p>Keep detailed notes on everything you build and learn. This documentation serves as portfolio material, helps you remember what you did, and demonstrates communication skills to potential employers.</p>
`,
	catalog.IndustryTrends: `
            <h2>Deep Dive: Emerging Technologies and Their Impact</h2>

            <p>Several technology trends are reshaping the security landscape. Understanding them helps you position for future opportunities:</p>

            <h3>Artificial Intelligence and Machine Learning</h3>

            <p>AI is being applied defensively for anomaly detection, user behavior analytics, automated alert triage, and threat intelligence analysis. It's being applied offensively for creating more convincing phishing, automating reconnaissance, and evading detection.</p>

            <p>Career implications: Understanding how AI tools work (at a conceptual level) becomes increasingly valuable. Roles specifically focused on AI/ML security are emerging. The ability to evaluate AI-generated alerts and understand AI system vulnerabilities will matter.</p>

            <h3>Zero Trust Architecture</h3>

            <p>Zero trust—"never trust, always verify"—is becoming the default security model for modern organizations. It assumes no user or system is inherently trustworthy, requiring continuous verification regardless of location.</p>

            <p>Career implications: Understanding zero trust principles, identity-centric security, micro-segmentation, and continuous authentication becomes increasingly important. These concepts will appear in more job requirements.</p>

            <h3>Cloud-Native Security</h3>

            <p>As more workloads move to cloud, security must adapt. Cloud-native security involves securing containers, Kubernetes, serverless functions, and infrastructure-as-code. It requires different skills than traditional on-premises security.</p>

            <p>Career implications: Cloud security skills (AWS, Azure, GCP) command premiums and will remain in demand. Understanding DevSecOps, container security, and cloud-native architectures differentiates candidates.</p>

            <h3>Supply Chain Security</h3>

            <p>High-profile attacks (SolarWinds, Kaseya, Log4j) have elevated supply chain security as a priority. Organizations are focusing more on third-party risk management, software composition analysis, and secure development practices.</p>

            <p>Career implications: GRC roles increasingly focus on vendor risk assessment. Application security roles involve more supply chain analysis. Understanding SBOMs (Software Bill of Materials) and software supply chain security becomes valuable.</p>

            <h3>Privacy and Regulatory Compliance</h3>

            <p>Privacy regulations continue to expand (GDPR, CCPA/CPRA, state-level laws). Security and privacy are increasingly intertwined, and organizations need people who understand both.</p>

            <p>Career implications: GRC roles benefit from privacy expertise. Technical roles increasingly involve privacy-enhancing technologies. Understanding data protection requirements across jurisdictions is valuable.</p>
`,
}

var exercises = map[catalog.Category]string{
	catalog.GettingStarted: `
            <h2>Practical Exercises to Start This Week</h2>

            <p>Theory is important, but action is what moves you forward. Here are specific exercises you can complete this week to build real skills:</p>

            <h3>Exercise 1: Set Up Your Learning Environment</h3>

            <p>Install VirtualBox or VMware Workstation Player (both free). Download Ubuntu Linux and Windows 10/11 evaluation ISOs. Create your first virtual machines. This takes 2-3 hours and gives you a safe playground for all future learning.</p>

            <h3>Exercise 2: Capture Your First Network Traffic</h3>

            <p>Install Wireshark on your host system. Capture 5 minutes of your own network traffic. Identify HTTP requests, DNS queries, and any other traffic you recognize. This builds intuition for what "normal" network activity looks like.</p>

            <h3>Exercise 3: Complete Your First TryHackMe Room</h3>

            <p>Create a free TryHackMe account. Complete the "Tutorial" room and one room from the "Introduction to Cybersecurity" path. Take notes on what you learn—this documentation habit is essential.</p>

            <h3>Exercise 4: Read Your First Security News</h3>

            <p>Subscribe to Krebs on Security and The Hacker News. Read three articles about recent security incidents. Try to understand what happened, how, and what could have prevented it.</p>

            <h3>Exercise 5: Write Your First Documentation</h3>

            <p>Document one of the above exercises as if you were explaining it to someone else. This forces you to understand the material well enough to teach it—and creates portfolio material.</p>
`,
	catalog.Certifications: `
            <h2>Your Study Plan: Week by Week</h2>

            <p>Here's a practical 10-week study plan for Security+, adaptable to your schedule:</p>

            <h3>Weeks 1-2: Foundations</h3>

            <p>Focus on networking and cryptography concepts. These are the most unfamiliar topics for most people and underpin everything else. Spend extra time here if these concepts are new to you.</p>

            <h3>Weeks 3-4: Threats and Vulnerabilities</h3>

            <p>Learn attack types, malware categories, and social engineering techniques. This content is engaging and helps you understand what you're protecting against.</p>

            <h3>Weeks 5-6: Architecture and Design</h3>

            <p>Study security concepts like defense in depth, secure network design, and cloud security fundamentals. Think about how these concepts apply to real organizations.</p>

            <h3>Weeks 7-8: Implementation and Operations</h3>

            <p>Cover identity and access management, security tools, and incident response. Relate these to hands-on practice in your home lab where possible.</p>

            <h3>Weeks 9-10: Review and Practice Exams</h3>

            <p>Take full-length practice exams. Review weak areas. Build test-taking endurance. Aim for consistent 80%+ scores before scheduling your real exam.</p>

            <h3>Exam Week</h3>

            <p>Light review only—no cramming. Get good sleep. Trust your preparation. Schedule your exam for a time when you're typically alert and focused.</p>
`,
	catalog.Salaries: `
            <h2>Maximizing Your Earning Potential</h2>

            <p>Beyond the base salary numbers, here are strategies that can add $10,000-50,000+ to your compensation over time:</p>

            <h3>Develop In-Demand Specializations</h3>

            <p>Cloud security, application security, and AI/ML security command premiums because demand outpaces supply. Building expertise in these areas can add 10-20% to your compensation compared to generalist roles.</p>

            <h3>Target High-Paying Industries</h3>

            <p>Financial services, Big Tech, and defense (for cleared positions) consistently pay above market. A security engineer at a hedge fund might earn $180,000 while the same role at a non-profit pays $110,000.</p>

            <h3>Consider Total Compensation</h3>

            <p>Base salary is just one component. Stock options/RSUs, bonuses, signing bonuses, and benefits can add 20-50% to total compensation at larger companies. A $140,000 base with $40,000 in stock is worth more than $160,000 base with no equity.</p>

            <h3>Strategic Job Changes</h3>

            <p>Internal raises typically run 3-5% annually. Job changes often bring 10-20% increases. Strategic moves every 2-3 years typically maximize lifetime earnings while building diverse experience.</p>

            <h3>Negotiate Everything</h3>

            <p>Most offers have flexibility. Always negotiate—even a modest 5% increase on a $100,000 offer is $5,000 per year, compounding over your career. And remember to negotiate more than just base: signing bonuses, equity, PTO, and review timing are all negotiable.</p>
`,
	catalog.CareerPaths: `
            <h2>Building Your Career Roadmap</h2>

            <p>Having a direction helps you make better decisions. Here are common career progressions based on different goals:</p>

            <h3>The Security Leadership Track</h3>

            <p>Year 1-2: SOC Analyst or Security Analyst. Year 3-5: Senior Analyst or Team Lead. Year 5-8: Security Manager. Year 8-12: Director. Year 12+: VP or CISO.</p>

            <p>This path emphasizes people management, business communication, and strategic thinking. You'll spend less time on technical work and more time on budget, staffing, and executive communication.</p>

            <h3>The Technical Expert Track</h3>

            <p>Year 1-2: SOC Analyst or Junior Security Engineer. Year 3-5: Security Engineer. Year 5-8: Senior Engineer. Year 8-12: Principal/Staff Engineer. Year 12+: Distinguished Engineer or Security Architect.</p>

            <p>This path maintains hands-on technical work throughout. Senior IC roles at large companies can match management compensation while preserving technical focus.</p>

            <h3>The Offensive Security Track</h3>

            <p>Year 1-3: Build defensive foundation (SOC, security analyst). Year 3-5: Transition to junior pentester or continue building offensive skills on the side. Year 5-8: Pentester or Red Team member. Year 8+: Senior Red Team, Red Team Lead, or consulting leadership.</p>

            <p>This path typically requires more patience early on, as true entry-level offensive roles are rare. Building a portfolio through CTFs and bug bounties helps demonstrate readiness.</p>

            <h3>The GRC/Advisory Track</h3>

            <p>Year 1-2: GRC Analyst or IT Auditor. Year 3-5: Senior GRC Analyst or Security Consultant. Year 5-8: GRC Manager or Advisory Manager. Year 8-12: Director of Risk or Compliance. Year 12+: Chief Risk Officer or CISO.</p>

            <p>This path emphasizes communication, policy development, and regulatory expertise over technical depth. Common for people with backgrounds in audit, compliance, or law.</p>
`,
	catalog.JobSearch: `
            <h2>Your Job Search Action Plan</h2>

            <p>Here's a systematic approach to your security job search:</p>

            <h3>Week 1-2: Foundation</h3>

            <p>Optimize your LinkedIn profile with security keywords and a compelling headline. Update your resume to highlight relevant skills and projects. Create a target list of 20-30 companies you'd like to work for.</p>

            <h3>Week 3-4: Initial Outreach</h3>

            <p>Apply to 15-20 positions with tailored resumes. Start engaging with security content on LinkedIn daily. Reach out to 5 people for informational interviews.</p>

            <h3>Week 5-8: Sustained Effort</h3>

            <p>Apply to 10-15 new positions weekly. Continue networking activities. Attend at least one security meetup or online event. Follow up on applications that haven't received responses after 1-2 weeks.</p>

            <h3>Ongoing: Skill Building</h3>

            <p>Continue learning throughout your search. Complete TryHackMe rooms or lab exercises weekly. Document your learning—this provides interview talking points and demonstrates continuous growth.</p>

            <h3>When You Get Interviews</h3>

            <p>Research the company's security posture thoroughly. Prepare examples for behavioral questions using the STAR method. Practice explaining technical concepts simply. Have thoughtful questions ready for your interviewers.</p>

            <h3>When You Get Offers</h3>

            <p>Always negotiate—respectfully and with data. Compare total compensation, not just base salary. Consider culture, growth opportunities, and learning potential alongside pay. Trust your instincts about team fit.</p>
`,
	catalog.Skills: `
            <h2>Skill-Building Exercises</h2>

            <p>Here are practical exercises to build each skill category:</p>

            <h3>Networking Skills</h3>

            <p>Use Wireshark to capture traffic while browsing the web. Identify the DNS queries, TCP handshakes, and HTTP/HTTPS traffic. Try to understand what each packet is doing and why.</p>

            <p>Set up a small network in your lab with multiple VMs. Configure static IP addresses. Set up a firewall and create rules. Verify the rules work by testing traffic.</p>

            <h3>OS Skills</h3>

            <p>On Windows: Use Event Viewer to examine security logs. Find login events (4624), failed logins (4625), and process creation (4688). Understand what each event tells you.</p>

            <p>On Linux: Navigate the /var/log directory. Use grep to search for failed authentication in auth.log. Use find to locate files modified in the last 24 hours. Write a simple bash script that checks for these automatically.</p>

            <h3>SIEM Skills</h3>

            <p>Set up Wazuh or Elastic Security in your lab. Configure it to collect logs from your other VMs. Create a simple alert for failed login attempts. Trigger the alert intentionally and investigate the results.</p>

            <h3>Scripting Skills</h3>

            <p>Write a Python script that reads a log file and extracts IP addresses. Extend it to count how many times each IP appears. This is practical log analysis that you'll do professionally.</p>

            <h3>Communication Skills</h3>

            <p>Write a one-page incident summary for a hypothetical scenario. Imagine explaining a phishing attack to a non-technical executive. Focus on what happened, what's at risk, and what actions are needed—without jargon.</p>
`,
	catalog.IndustryTrends: `
            <h2>Positioning Yourself for the Future</h2>

            <p>The security landscape evolves constantly. Here's how to stay relevant:</p>

            <h3>Invest in Transferable Fundamentals</h3>

            <p>Networking, operating systems, and security concepts remain valuable regardless of which specific technologies emerge. These foundations let you learn new tools quickly as the industry shifts.</p>

            <h3>Follow Technology Trends</h3>

            <p>Cloud continues to grow—AWS, Azure, and GCP skills remain relevant. AI/ML is creating both new attack vectors and new defensive tools. Zero trust architecture is becoming standard. Identity-centric security is increasingly important.</p>

            <h3>Build Demonstrable Skills</h3>

            <p>In a world where credentials are common, practical demonstration matters more. Maintain a portfolio of projects. Contribute to open source. Write about what you learn. Show your work.</p>

            <h3>Stay Connected to the Community</h3>

            <p>Security is a community-driven field. Practitioners share knowledge through blogs, conferences, and social media. Staying connected keeps you informed about emerging threats, new tools, and shifting skill demands.</p>

            <h3>Be Adaptable</h3>

            <p>The specific tools and technologies that matter will change over your career. The meta-skill of learning quickly and adapting to new environments is what keeps professionals relevant over decades.</p>
`,
}

var faqs = map[catalog.Category]string{
	catalog.GettingStarted: `
            <h2>Common Questions Answered</h2>

            <h3>Do I need a degree to work in cybersecurity?</h3>

            <p>No, you don't. While some positions list degree requirements, the reality is that demonstrated skills and relevant certifications often matter more. Many successful security professionals don't have degrees in computer science or related fields. What matters is proving you can do the work.</p>

            <p>That said, a degree isn't worthless—it can help with certain government positions, provides foundational knowledge, and some employers do prefer it. But it's not the barrier it's often perceived to be.</p>

            <h3>Am I too old to start a cybersecurity career?</h3>

            <p>If you're asking this question, the answer is almost certainly no. Security professionals come from all age groups, and career changers in their 30s, 40s, and even 50s successfully enter the field regularly.</p>

            <p>Your life experience often provides advantages: professional maturity, communication skills, work ethic, and domain knowledge from your previous career. Many organizations value these qualities highly.</p>

            <h3>How much math do I need?</h3>

            <p>For most security roles, not much. You need basic logical thinking and the ability to understand how systems work, but advanced mathematics is rarely required. Cryptography gets into some math, but you don't need to derive the algorithms—you need to understand when and how to apply them.</p>

            <h3>Should I focus on offensive or defensive security?</h3>

            <p>For beginners, defensive security (blue team) is usually more accessible. There are more entry-level positions, the learning curve is more manageable, and you build foundational skills that apply everywhere.</p>

            <p>Offensive security (red team/pentesting) typically requires more experience and demonstrated skills before employers will hire you. Many pentesters started on the defensive side first.</p>
`,
	catalog.Certifications: `
            <h2>Frequently Asked Questions About Certifications</h2>

            <h3>Can I pass Security+ without any IT experience?</h3>

            <p>Yes, many people do. It's harder without any background—you'll need to spend extra time on foundational concepts that would be familiar to someone with IT experience. But the exam is designed to be passable by dedicated self-studiers who put in the work.</p>

            <p>Expect to spend 3-4 months studying rather than 6-8 weeks if you're truly starting from zero.</p>

            <h3>Are practice exams necessary?</h3>

            <p>Yes. Practice exams do two things no other study method can replicate: they reveal gaps in your knowledge you didn't know existed, and they build the test-taking endurance you need for a 90+ minute exam.</p>

            <p>Quality matters—a few well-written practice exams from reputable sources are worth more than dozens of free tests with questionable accuracy.</p>

            <h3>How many certifications do I really need?</h3>

            <p>Fewer than you think. For entry-level positions, one certification (typically Security+) combined with demonstrated hands-on skills is usually sufficient. Adding more certifications without experience often suggests you're more interested in collecting credentials than building capability.</p>

            <p>A reasonable long-term path might include: one entry-level cert, one specialty cert aligned to your role, and eventually one senior-level cert (like CISSP) when you're ready for leadership. That's three certifications across a multi-decade career, not three per year.</p>

            <h3>Should I get certified before or after getting a job?</h3>

            <p>Before, for your first entry-level certification. Security+ or equivalent helps you clear HR filters and demonstrates commitment to the field. After you're employed, additional certifications often come with employer sponsorship, and you have better context for what's actually useful.</p>
`,
	catalog.Salaries: `
            <h2>Salary FAQs</h2>

            <h3>Are security salaries really that high?</h3>

            <p>Compared to many fields, yes. But the six-figure salaries you see in headlines aren't universal—they're skewed by high cost-of-living areas, specific specializations, and senior experience levels. Entry-level security jobs typically pay $50,000-75,000, which is good but not exceptional.</p>

            <p>The field does offer strong earning potential over time, especially for people who develop in-demand specializations or move into leadership roles.</p>

            <h3>Will remote work hurt my salary?</h3>

            <p>It depends on the company's compensation philosophy. Some companies pay location-adjusted salaries—if you work remotely from a lower cost-of-living area, they pay less. Others pay based on the company's headquarters location regardless of where you work.</p>

            <p>Ask about compensation policy during your job search. The difference can be significant.</p>

            <h3>How do I know if an offer is fair?</h3>

            <p>Research market rates before negotiating. Look at multiple data sources: Levels.fyi for tech companies, Glassdoor for broad coverage, industry salary surveys from ISC2 and ISACA. Compare the role, location, company size, and industry to similar positions.</p>

            <p>If you're consistently seeing higher numbers for comparable roles, you have data to support negotiating for more.</p>

            <h3>Should I accept a lower salary to break into the field?</h3>

            <p>Sometimes it makes sense to prioritize opportunity over immediate compensation—if a role offers exceptional learning opportunities, mentorship, or a path to growth, a somewhat lower salary might be worthwhile.</p>

            <p>However, be careful about undervaluing yourself significantly. Companies that lowball entry-level candidates often continue that pattern. And once you accept a certain salary, future raises and job offers often build from that baseline.</p>
`,
	catalog.CareerPaths: `
            <h2>Career Path Questions</h2>

            <h3>How long should I stay in an entry-level role?</h3>

            <p>Typically 1-2 years is sufficient to build foundational experience before seeking a promotion or new opportunity. Staying longer than 3 years in a true entry-level role may suggest you're not progressing or that the role has limited growth potential.</p>

            <p>That said, "entry-level" varies widely. A Tier 1 SOC analyst might naturally progress to Tier 2 within the same organization, which is different from staying stuck in the same responsibilities for years.</p>

            <h3>Is management the only path to higher compensation?</h3>

            <p>No. Many organizations now have explicit individual contributor (IC) tracks that reach staff, principal, or distinguished engineer levels with compensation matching or exceeding management roles.</p>

            <p>The availability and compensation of these tracks varies by company size and culture. Larger tech companies typically have more developed IC tracks.</p>

            <h3>Should I specialize early or stay generalist?</h3>

            <p>Build a generalist foundation first, then specialize. Early specialization can limit your options and make you vulnerable to market shifts. Once you have broad foundational knowledge (usually 2-5 years into your career), specializing in high-demand areas can significantly accelerate compensation and advancement.</p>

            <h3>Can I switch between red team and blue team?</h3>

            <p>Yes, though it's easier in some directions than others. Moving from blue team to red team typically requires building offensive skills on your own time first. Moving from red team to blue team is often more straightforward since offensive practitioners already understand defensive gaps.</p>

            <p>The skills are more complementary than most people realize—understanding both sides makes you better at either.</p>
`,
	catalog.JobSearch: `
            <h2>Job Search Questions Answered</h2>

            <h3>How many applications should I expect to submit?</h3>

            <p>For entry-level positions with limited experience, expect to submit 50-100+ applications before landing your first role. This isn't because you're unqualified—it's the reality of competitive job markets with ATS filtering.</p>

            <p>Quality matters more than pure volume. 50 tailored applications typically outperform 200 generic submissions.</p>

            <h3>Why am I not getting any responses?</h3>

            <p>The most common reasons: your resume isn't making it past ATS filters (keywords don't match the job posting), you're applying to positions significantly above your experience level, your resume doesn't clearly communicate relevant skills and accomplishments, or you're competing in an oversaturated market.</p>

            <p>Try adjusting your approach: tailor resumes more carefully to each position, broaden your search to include adjacent roles (IT with security responsibilities, security coordinator positions), and focus energy on networking alongside online applications.</p>

            <h3>Should I apply even if I don't meet all requirements?</h3>

            <p>Yes, if you meet 60%+ of the requirements. Job postings are wish lists, not hard requirements. The "perfect candidate" rarely exists, and hiring managers often make trade-offs between requirements.</p>

            <p>The exception: don't apply to positions that require specific clearances or credentials you don't have and can't quickly obtain.</p>

            <h3>How important is networking really?</h3>

            <p>Very important. Studies suggest 40-70% of jobs are filled through some form of networking. Referrals get more attention from hiring managers, and connections can provide insider information about what teams actually need.</p>

            <p>This doesn't mean cold applications are useless—many people do get hired through job boards. But relying solely on online applications means competing in the most crowded channel.</p>
`,
	catalog.Skills: `
            <h2>Skills Questions</h2>

            <h3>What programming language should I learn first?</h3>

            <p>For most security roles, Python is the most versatile choice. It's widely used for automation, tool development, and scripting in security contexts. Once you have Python basics, adding Bash (for Linux) and PowerShell (for Windows) gives you excellent coverage.</p>

            <p>You don't need to become a software developer. Focus on practical scripting—automating repetitive tasks, parsing log files, making API calls—rather than building complex applications.</p>

            <h3>How do I learn networking if I don't have access to real equipment?</h3>

            <p>Virtual labs cover most learning needs. Tools like GNS3 and Packet Tracer let you simulate networks. Cloud platforms (AWS, Azure, GCP) provide real networking environments you can experiment with at low cost. Wireshark can capture and analyze real traffic on your home network.</p>

            <p>The conceptual understanding matters more than touching specific hardware. Most security professionals never configure physical switches directly anyway.</p>

            <h3>Which SIEM should I learn?</h3>

            <p>If you can only learn one, Splunk has the broadest adoption in enterprise environments. Microsoft Sentinel is increasingly common and has free learning resources through Microsoft Learn. The concepts transfer between platforms—once you deeply understand one SIEM's query language and workflow, picking up another is much faster.</p>

            <h3>How do I stay current without getting overwhelmed?</h3>

            <p>Sustainable habits matter more than comprehensive coverage. Follow a few quality news sources rather than dozens. Read one or two in-depth articles per week rather than skimming many. Pay attention to major breach disclosures and post-mortems. Participate in communities where practitioners share knowledge.</p>

            <p>You can't know everything. Aim to know your specialty deeply and have enough breadth to recognize when you need to learn more about something.</p>
`,
	catalog.IndustryTrends: `
            <h2>Industry Questions</h2>

            <h3>Is cybersecurity really "recession-proof"?</h3>

            <p>No field is truly recession-proof, but security has several characteristics that provide relative stability: it's increasingly a regulatory requirement (companies can't just stop doing it), threats don't decrease in economic downturns (often they increase), and the structural talent shortage provides buffer.</p>

            <p>During economic downturns, security hiring may slow but rarely stops completely. Budget cuts are more likely to affect new initiatives than core security operations.</p>

            <h3>Will AI replace security analysts?</h3>

            <p>Current AI is augmenting analysts, not replacing them. AI is getting better at initial alert filtering, anomaly detection, and pattern recognition—tasks that are time-consuming but don't require human judgment. Complex investigations, incident response decisions, threat hunting, and communicating with stakeholders still require human analysts.</p>

            <p>The more likely near-term impact: each analyst becomes more efficient, handling more alerts with AI assistance. The nature of the work shifts toward higher-judgment activities.</p>

            <h3>Which security specialization has the most job security?</h3>

            <p>Cloud security has strong demand that's unlikely to diminish as cloud adoption continues. Incident response skills remain perpetually needed—breaches aren't stopping. GRC roles are tied to regulatory requirements that keep expanding.</p>

            <p>Be cautious about specializations tied to specific technologies that might be disrupted. Focus on transferable skills and concepts rather than just tool-specific knowledge.</p>

            <h3>Is the "talent shortage" overstated?</h3>

            <p>The shortage is real but nuanced. There's genuine demand for qualified security professionals with practical skills. There's less demand for people with only certifications and no demonstrated ability.</p>

            <p>The gap exists because organizations need people who can actually do the work, and producing skilled practitioners takes time and experience that can't be rushed with credential programs alone.</p>
`,
}
